package mem

type mem struct {
	wel bool // write-enable latch
	buf []byte
}
