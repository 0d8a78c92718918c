package chip

/*
Transport is the narrow command set the engine needs from a flash chip
driver. All calls block until the operation is handed to the device;
WaitUntilFree blocks until the device reports idle. Programming clears
bits only; callers must guarantee the target region is erased. Every
program or erase must be preceded by EnableWriting.
*/
type Transport interface {
	// ReadPage reads len(buf) bytes starting at addr. len(buf) must not
	// exceed the page size.
	ReadPage(addr uint32, buf []byte) error

	// WritePage programs len(buf) bytes at addr. The write must not
	// cross a page boundary; len(buf) may be less than a full page.
	WritePage(addr uint32, buf []byte) error

	// EraseSector erases the entire sector containing addr, resetting
	// all of its bytes to the fill value.
	EraseSector(addr uint32) error

	EnableWriting() error
	WaitUntilFree() error

	// Capacity reports the device size in bytes.
	Capacity() uint32
}
