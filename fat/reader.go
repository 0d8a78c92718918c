package fat

import (
	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/errmsg"
	"github.com/norfs/flashfat/table"
)

// OpenFile opens the file at index fi for reading. The table is reloaded
// from the medium so the session sees the latest committed state.
func (f *fat) OpenFile(fi int) error {
	if f.mode != modeClosed {
		return errmsg.WrongMode
	}
	t, err := table.Load(f.x)
	if err != nil {
		return err
	}
	f.tbl = t
	if fi < 0 || fi >= int(t.Cnt) {
		return errmsg.InvalidFile
	}
	e := &t.Files[fi]
	f.fdx = fi
	f.cur = e.Start()
	f.end = e.End()
	f.mode = modeRead
	return nil
}

// Read fills buf from the open file, clamped to the bytes remaining, and
// reports the number of bytes delivered.
func (f *fat) Read(buf []byte) (int, error) {
	if f.mode != modeRead {
		return 0, errmsg.WrongMode
	}
	n := len(buf)
	if r := int(f.end - f.cur); n > r {
		n = r
	}
	if n == 0 {
		return 0, nil
	}
	var page [constant.PageSize]byte
	o := 0
	for o < n {
		m := n - o
		if m > constant.PageSize {
			m = constant.PageSize
		}
		if err := f.x.ReadPage(f.cur, page[:m]); err != nil {
			f.log.Errorf("page read at %v failed: %v\n", f.cur, err)
			return o, err
		}
		copy(buf[o:], page[:m])
		f.cur += uint32(m)
		o += m
	}
	return n, nil
}

// Peek reports the bytes remaining in the open file, 0 outside of a read
// session.
func (f *fat) Peek() uint32 {
	if f.mode != modeRead {
		return 0
	}
	return f.end - f.cur
}
