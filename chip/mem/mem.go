package mem

import (
	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/errmsg"
)

// New returns a RAM-backed flash device of the given size, fully erased.
// size must be a multiple of the sector size.
func New(size uint32) *mem {
	m := &mem{buf: make([]byte, size)}
	for i := range m.buf {
		m.buf[i] = constant.FillByte
	}
	return m
}

func (m *mem) ReadPage(addr uint32, buf []byte) error {
	if len(buf) > constant.PageSize {
		return errmsg.OutOfRange
	}
	if int(addr)+len(buf) > len(m.buf) {
		return errmsg.OutOfRange
	}
	copy(buf, m.buf[addr:])
	return nil
}

func (m *mem) WritePage(addr uint32, buf []byte) error {
	if !m.wel {
		return errmsg.WriteDisabled
	}
	m.wel = false
	if int(addr%constant.PageSize)+len(buf) > constant.PageSize {
		return errmsg.OutOfRange
	}
	if int(addr)+len(buf) > len(m.buf) {
		return errmsg.OutOfRange
	}
	for i, b := range buf {
		m.buf[addr+uint32(i)] &= b
	}
	return nil
}

func (m *mem) EraseSector(addr uint32) error {
	if !m.wel {
		return errmsg.WriteDisabled
	}
	m.wel = false
	if int(addr) >= len(m.buf) {
		return errmsg.OutOfRange
	}
	s := addr &^ (constant.SectorSize - 1)
	for i := uint32(0); i < constant.SectorSize; i++ {
		m.buf[s+i] = constant.FillByte
	}
	return nil
}

func (m *mem) EnableWriting() error {
	m.wel = true
	return nil
}

func (m *mem) WaitUntilFree() error {
	return nil
}

func (m *mem) Capacity() uint32 {
	return uint32(len(m.buf))
}
