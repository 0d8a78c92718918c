package fat

import (
	"os"

	"github.com/nnsgmsone/damrey/logger"
	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/errmsg"
	"github.com/norfs/flashfat/table"
)

func DefaultConfig() Config {
	return Config{
		LogWriter: os.Stderr,
	}
}

// Open loads the directory from the medium, bootstrapping an empty one if
// no table is found.
func Open(cfg Config) (*fat, error) {
	log := logger.New(cfg.LogWriter, "flashfat")
	t, err := table.Load(cfg.Transport)
	switch err {
	case nil:
	case errmsg.TableNotFound:
		t = &table.Table{Crash: constant.NoOpenFile}
		if err := table.Store(cfg.Transport, t); err != nil {
			log.Errorf("table bootstrap failed: %v\n", err)
			return nil, err
		}
	default:
		return nil, err
	}
	return &fat{mode: modeClosed, x: cfg.Transport, tbl: t, log: log}, nil
}

// CloseFile ends the open session. A write session is finalized first:
// buffered bytes are flushed and the file's entry is committed. The
// session always returns to closed, even when finalization fails.
func (f *fat) CloseFile() error {
	var err error

	if f.mode == modeWrite {
		err = f.finalize()
	}
	f.mode = modeClosed
	f.bdx = 0
	f.pdx = 0
	f.fdx = 0
	f.cur = 0
	f.end = 0
	f.erased = 0
	return err
}

func (f *fat) DeleteLastFile() error {
	if f.mode != modeClosed {
		return errmsg.WrongMode
	}
	if f.tbl.Cnt > 0 {
		f.tbl.Cnt--
	}
	return table.Store(f.x, f.tbl)
}

func (f *fat) DeleteAllFiles() error {
	if f.mode != modeClosed {
		return errmsg.WrongMode
	}
	f.tbl.Cnt = 0
	return table.Store(f.x, f.tbl)
}

// Files returns a copy of the registered file entries.
func (f *fat) Files() []table.Entry {
	fs := make([]table.Entry, f.tbl.Cnt)
	copy(fs, f.tbl.Files[:f.tbl.Cnt])
	return fs
}

// Incomplete reports whether the file was left open by an unclean
// shutdown; its length fields may be stale.
func (f *fat) Incomplete(fi int) bool {
	return f.tbl.Crash != constant.NoOpenFile && int(f.tbl.Crash) == fi
}

func (f *fat) program(addr uint32, buf []byte) error {
	if err := f.enable(); err != nil {
		return err
	}
	return f.x.WritePage(addr, buf)
}

func (f *fat) erase(addr uint32) error {
	if err := f.enable(); err != nil {
		return err
	}
	return f.x.EraseSector(addr)
}

func (f *fat) enable() error {
	if err := f.x.WaitUntilFree(); err != nil {
		return err
	}
	if err := f.x.EnableWriting(); err != nil {
		return err
	}
	return f.x.WaitUntilFree()
}
