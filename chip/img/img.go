package img

import (
	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/errmsg"
	"golang.org/x/sys/unix"
)

// Open maps a flash image file as a transport. A missing or short file is
// grown to size and reads as erased flash. size must be a multiple of the
// sector size.
func Open(path string, size uint32) (*img, error) {
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR, 0664)
	if err != nil {
		return nil, err
	}
	defer unix.Close(fd)
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, err
	}
	fresh := st.Size < int64(size)
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		return nil, err
	}
	buf, err := unix.Mmap(fd, 0, int(size), unix.PROT_WRITE|unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	m := &img{buf: buf}
	if fresh {
		for i := range m.buf {
			m.buf[i] = constant.FillByte
		}
	}
	return m, nil
}

func (m *img) Close() error {
	return unix.Munmap(m.buf)
}

func (m *img) Flush() error {
	return unix.Msync(m.buf, unix.MS_SYNC)
}

func (m *img) ReadPage(addr uint32, buf []byte) error {
	if len(buf) > constant.PageSize {
		return errmsg.OutOfRange
	}
	if int(addr)+len(buf) > len(m.buf) {
		return errmsg.OutOfRange
	}
	copy(buf, m.buf[addr:])
	return nil
}

func (m *img) WritePage(addr uint32, buf []byte) error {
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
	return unix.Msync(m.buf, unix.MS_SYNC)
}

func (m *img) EraseSector(addr uint32) error {
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
	return unix.Msync(m.buf, unix.MS_SYNC)
}

func (m *img) EnableWriting() error {
	m.wel = true
	return nil
}

func (m *img) WaitUntilFree() error {
	return nil
}

func (m *img) Capacity() uint32 {
	return uint32(len(m.buf))
}
