package fat

import (
	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/errmsg"
	"github.com/norfs/flashfat/table"
)

// NewFile registers a new file at the first free sector after the last
// file, erases its first sector and commits the table with the crash
// marker set, so the file's existence survives an unclean shutdown.
func (f *fat) NewFile() (int, error) {
	if f.mode != modeClosed {
		return 0, errmsg.WrongMode
	}
	if int(f.tbl.Cnt) >= constant.MaxFileCount {
		return 0, errmsg.TableFull
	}
	var end uint32
	if f.tbl.Cnt > 0 {
		end = f.tbl.Files[f.tbl.Cnt-1].End()
	}
	start := (end/constant.SectorSize + 1) * constant.SectorSize
	if start+constant.SectorSize > f.x.Capacity() {
		return 0, errmsg.OutOfSpace
	}
	if err := f.erase(start); err != nil {
		f.log.Errorf("sector erase at %v failed: %v\n", start, err)
		return 0, err
	}
	fdx := int(f.tbl.Cnt)
	f.tbl.Cnt++
	f.tbl.Files[fdx] = table.Entry{StartPage: uint16(start / constant.PageSize)}
	f.tbl.Crash = uint8(fdx)
	f.fdx = fdx
	f.cur = start
	f.erased = start + constant.SectorSize - 1
	f.mode = modeWrite
	if err := table.Store(f.x, f.tbl); err != nil {
		f.log.Errorf("table commit failed: %v\n", err)
		return fdx, err
	}
	return fdx, nil
}

// Write appends to the open file through the write buffer. On a transport
// failure the session stays open; the caller may retry or close.
func (f *fat) Write(data []byte) (int, error) {
	if f.mode != modeWrite {
		return 0, errmsg.WrongMode
	}
	for i := range data {
		if f.bdx == constant.WriteBuffer {
			if err := f.flush(constant.WriteBuffer); err != nil {
				f.log.Errorf("flush failed: %v\n", err)
				return i, err
			}
		}
		f.buf[f.bdx] = data[i]
		f.bdx++
	}
	return len(data), nil
}

func (f *fat) finalize() error {
	n := f.bdx
	if n != 0 {
		pad := (constant.PageSize - n%constant.PageSize) % constant.PageSize
		for i := 0; i < pad; i++ {
			f.buf[n+i] = constant.FillByte
		}
		if err := f.flush(n); err != nil {
			f.log.Errorf("flush failed: %v\n", err)
			return err
		}
	}
	e := &f.tbl.Files[f.fdx]
	e.PageLength = uint16(f.cur/constant.PageSize) - e.StartPage
	e.EndOffset = uint8(n % constant.PageSize)
	f.tbl.Crash = constant.NoOpenFile
	if err := table.Store(f.x, f.tbl); err != nil {
		f.log.Errorf("table commit failed: %v\n", err)
		return err
	}
	return nil
}

// flush programs the first n buffered bytes at the cursor, the last page
// possibly short. Pages already programmed by a failed earlier attempt
// are not reprogrammed.
func (f *fat) flush(n int) error {
	if err := f.eraseAhead(uint32(n - f.pdx*constant.PageSize)); err != nil {
		return err
	}
	pages := (n + constant.PageSize - 1) / constant.PageSize
	for f.pdx < pages {
		o := f.pdx * constant.PageSize
		m := constant.PageSize
		if o+m > n {
			m = n - o
		}
		if err := f.program(f.cur, f.buf[o:o+m]); err != nil {
			return err
		}
		f.cur += uint32(m)
		f.pdx++
	}
	f.pdx = 0
	f.bdx = 0
	return nil
}

// eraseAhead extends the frontier of guaranteed-erased space when the
// need bytes about to be programmed would cross it. Demanding only the
// actual need keeps the last sector of the medium writable to the end.
func (f *fat) eraseAhead(need uint32) error {
	if f.cur+need <= f.erased+1 {
		return nil
	}
	if f.erased+1+constant.SectorSize > f.x.Capacity() {
		return errmsg.OutOfSpace
	}
	if err := f.erase(f.erased + 1); err != nil {
		f.log.Errorf("erase ahead at %v failed: %v\n", f.erased+1, err)
		return err
	}
	f.erased += constant.SectorSize
	return nil
}
