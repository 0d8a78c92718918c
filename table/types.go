package table

import "github.com/norfs/flashfat/constant"

const (
	Magic = "FLASHFAT"
)

const (
	EntrySize  = 5 // 2 start page + 2 page length + 1 end offset
	HeaderSize = len(Magic) + 2
)

// Entry describes one file's extent on the medium.
type Entry struct {
	StartPage  uint16 // first page address, sector aligned
	PageLength uint16 // full pages occupied
	EndOffset  uint8  // valid bytes on the page after the full pages
}

// Table is the device directory, resident in page 0. Entries are ordered
// by file index, non-overlapping, in increasing address order.
type Table struct {
	Cnt   uint8 // registered files
	Crash uint8 // index of an unclosed write, or constant.NoOpenFile
	Files [constant.MaxFileCount]Entry
}

func (e *Entry) Start() uint32 {
	return uint32(e.StartPage) * constant.PageSize
}

func (e *Entry) Bytes() uint32 {
	return uint32(e.PageLength)*constant.PageSize + uint32(e.EndOffset)
}

// End returns the end-exclusive byte address of the entry.
func (e *Entry) End() uint32 {
	return e.Start() + e.Bytes()
}
