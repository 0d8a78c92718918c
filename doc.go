/*
Package flashfat implements a minimal append-only file store for raw NOR
flash in pure Go. A FAT-like directory of immutable files lives in the
first page of the medium; files are written sequentially through a small
buffer with sector erase-ahead and read back as byte streams. One session
(read or write) may be open at a time.
*/
package flashfat
