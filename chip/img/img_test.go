package img

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/errmsg"
	"github.com/norfs/flashfat/fat"
	"github.com/stretchr/testify/require"
)

func TestFreshImageReadsErased(t *testing.T) {
	r := require.New(t)
	m, err := Open(filepath.Join(t.TempDir(), "flash.img"), 4*constant.SectorSize)
	r.NoError(err)
	defer m.Close()

	r.EqualValues(4*constant.SectorSize, m.Capacity())
	buf := make([]byte, constant.PageSize)
	r.NoError(m.ReadPage(0, buf))
	for _, b := range buf {
		r.EqualValues(constant.FillByte, b)
	}
}

func TestLatchAndProgram(t *testing.T) {
	r := require.New(t)
	m, err := Open(filepath.Join(t.TempDir(), "flash.img"), 4*constant.SectorSize)
	r.NoError(err)
	defer m.Close()

	r.Equal(errmsg.WriteDisabled, m.WritePage(0, []byte{0x12}))
	r.NoError(m.EnableWriting())
	r.NoError(m.WritePage(0, []byte{0x12}))

	buf := make([]byte, 1)
	r.NoError(m.ReadPage(0, buf))
	r.EqualValues(0x12, buf[0])
}

func TestPersistsAcrossReopen(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "flash.img")

	m, err := Open(path, 4*constant.SectorSize)
	r.NoError(err)
	r.NoError(m.EnableWriting())
	r.NoError(m.WritePage(constant.SectorSize, []byte("persist")))
	r.NoError(m.Flush())
	r.NoError(m.Close())

	m, err = Open(path, 4*constant.SectorSize)
	r.NoError(err)
	defer m.Close()
	buf := make([]byte, 7)
	r.NoError(m.ReadPage(constant.SectorSize, buf))
	r.Equal([]byte("persist"), buf)
}

func TestEngineOverImage(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "flash.img")
	in := []byte("written through the engine onto an image file")

	m, err := Open(path, 16*constant.SectorSize)
	r.NoError(err)
	f, err := fat.Open(fat.Config{Transport: m, LogWriter: ioutil.Discard})
	r.NoError(err)
	fi, err := f.NewFile()
	r.NoError(err)
	_, err = f.Write(in)
	r.NoError(err)
	r.NoError(f.CloseFile())
	r.NoError(m.Close())

	// the file survives a full reopen of image and engine
	m, err = Open(path, 16*constant.SectorSize)
	r.NoError(err)
	defer m.Close()
	f, err = fat.Open(fat.Config{Transport: m, LogWriter: ioutil.Discard})
	r.NoError(err)
	r.NoError(f.OpenFile(fi))
	r.EqualValues(len(in), f.Peek())
	out := make([]byte, len(in))
	n, err := f.Read(out)
	r.NoError(err)
	r.Equal(len(in), n)
	r.Equal(in, out)
}
