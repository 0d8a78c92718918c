package fat

import (
	"io"

	"github.com/nnsgmsone/damrey/logger"
	"github.com/norfs/flashfat/chip"
	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/table"
)

/*
FAT provides the functions required to store and retrieve files on a raw
flash medium. Exactly one session (read or write) may be open at a time;
FAT is not thread-safe, callers embedding it in a multi-threaded host must
serialize all calls.
*/
type FAT interface {
	NewFile() (int, error)
	Write([]byte) (int, error)
	CloseFile() error

	OpenFile(int) error
	Read([]byte) (int, error)
	Peek() uint32

	DeleteLastFile() error
	DeleteAllFiles() error

	Files() []table.Entry
	Incomplete(int) bool
}

type Config struct {
	Transport chip.Transport
	LogWriter io.Writer
}

const (
	modeClosed = iota
	modeWrite
	modeRead
)

type fat struct {
	mode   int
	bdx    int    // write buffer fill
	pdx    int    // pages of the buffer already programmed
	fdx    int    // file index of the open session
	cur    uint32 // physical byte address of the cursor
	end    uint32 // end-exclusive address of the open file, read mode
	erased uint32 // last byte address guaranteed erased, write mode
	buf    [constant.WriteBuffer]byte
	x      chip.Transport
	tbl    *table.Table
	log    logger.Log
}
