package table

import (
	"github.com/norfs/flashfat/chip"
	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/errmsg"
)

// Load reads the directory from page 0. A missing magic yields
// errmsg.TableNotFound; the caller bootstraps a fresh table.
func Load(x chip.Transport) (*Table, error) {
	var buf [constant.PageSize]byte

	if err := x.WaitUntilFree(); err != nil {
		return nil, err
	}
	if err := x.ReadPage(0, buf[:]); err != nil {
		return nil, err
	}
	if string(buf[:len(Magic)]) != Magic {
		return nil, errmsg.TableNotFound
	}
	t := &Table{}
	t.Cnt = buf[len(Magic)]
	t.Crash = buf[len(Magic)+1]
	o := HeaderSize
	if t.Cnt > constant.MaxFileCount {
		return nil, errmsg.TableNotFound
	}
	for i := 0; i < int(t.Cnt); i++ {
		t.Files[i].StartPage = uint16(buf[o])<<8 | uint16(buf[o+1])
		t.Files[i].PageLength = uint16(buf[o+2])<<8 | uint16(buf[o+3])
		t.Files[i].EndOffset = buf[o+4]
		o += EntrySize
	}
	return t, nil
}

// Store commits the directory to page 0. The erase and program are two
// separate device operations; a power loss between them leaves no magic
// on the medium, which reads back as TableNotFound on the next Load.
func Store(x chip.Transport, t *Table) error {
	var buf [constant.PageSize]byte

	copy(buf[:], Magic)
	buf[len(Magic)] = t.Cnt
	buf[len(Magic)+1] = t.Crash
	o := HeaderSize
	for i := 0; i < int(t.Cnt); i++ {
		buf[o] = byte(t.Files[i].StartPage >> 8)
		buf[o+1] = byte(t.Files[i].StartPage)
		buf[o+2] = byte(t.Files[i].PageLength >> 8)
		buf[o+3] = byte(t.Files[i].PageLength)
		buf[o+4] = t.Files[i].EndOffset
		o += EntrySize
	}
	if err := enable(x); err != nil {
		return err
	}
	if err := x.EraseSector(0); err != nil {
		return err
	}
	if err := enable(x); err != nil {
		return err
	}
	return x.WritePage(0, buf[:])
}

func enable(x chip.Transport) error {
	if err := x.WaitUntilFree(); err != nil {
		return err
	}
	if err := x.EnableWriting(); err != nil {
		return err
	}
	return x.WaitUntilFree()
}
