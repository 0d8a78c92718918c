package constant

const (
	PageSize   = 256  // smallest programmable unit
	SectorSize = 4096 // smallest erasable unit
)

const (
	WriteBuffer = 512 // write buffer size, two pages
)

const (
	// MaxFileCount is the largest entry count whose record still fits
	// the one-page allocation table: 8 magic + 2 header + 5 per entry.
	MaxFileCount = 49

	// NoOpenFile is the crash marker value meaning no write session
	// was open when the table was committed.
	NoOpenFile = 255
)

const (
	FillByte = 0xFF // erased state of the medium
)
