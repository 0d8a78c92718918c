package table

import (
	"testing"

	"github.com/norfs/flashfat/chip/mem"
	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/errmsg"
	"github.com/stretchr/testify/require"
)

func TestLoadBlankMedium(t *testing.T) {
	x := mem.New(4 * constant.SectorSize)
	_, err := Load(x)
	require.Equal(t, errmsg.TableNotFound, err)
}

func TestStoreLoad(t *testing.T) {
	r := require.New(t)
	x := mem.New(4 * constant.SectorSize)

	in := &Table{Cnt: 3, Crash: constant.NoOpenFile}
	in.Files[0] = Entry{StartPage: 16, PageLength: 3, EndOffset: 232}
	in.Files[1] = Entry{StartPage: 32, PageLength: 0, EndOffset: 1}
	in.Files[2] = Entry{StartPage: 48, PageLength: 16, EndOffset: 0}
	r.NoError(Store(x, in))

	out, err := Load(x)
	r.NoError(err)
	r.Equal(in, out)
}

func TestStoreOverwrites(t *testing.T) {
	r := require.New(t)
	x := mem.New(4 * constant.SectorSize)

	in := &Table{Cnt: 1, Crash: 0}
	in.Files[0] = Entry{StartPage: 16}
	r.NoError(Store(x, in))

	in.Crash = constant.NoOpenFile
	in.Files[0].PageLength = 2
	r.NoError(Store(x, in))

	out, err := Load(x)
	r.NoError(err)
	r.EqualValues(constant.NoOpenFile, out.Crash)
	r.EqualValues(2, out.Files[0].PageLength)
}

func TestLoadRejectsBadCount(t *testing.T) {
	r := require.New(t)
	x := mem.New(4 * constant.SectorSize)

	var buf [constant.PageSize]byte
	for i := range buf {
		buf[i] = constant.FillByte
	}
	copy(buf[:], Magic)
	buf[len(Magic)] = constant.MaxFileCount + 1
	r.NoError(x.EnableWriting())
	r.NoError(x.WritePage(0, buf[:]))

	_, err := Load(x)
	r.Equal(errmsg.TableNotFound, err)
}

func TestEntryAddresses(t *testing.T) {
	r := require.New(t)
	e := Entry{StartPage: 16, PageLength: 3, EndOffset: 232}
	r.EqualValues(4096, e.Start())
	r.EqualValues(1000, e.Bytes())
	r.EqualValues(5096, e.End())
}
