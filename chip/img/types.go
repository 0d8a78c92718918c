package img

type img struct {
	wel bool // write-enable latch
	buf []byte
}
