package w25q

import (
	"time"

	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/errmsg"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Open connects to a W25Q64FV on the given SPI port with a manually driven
// chip select and verifies its JEDEC ID.
func Open(port spi.Port, cs gpio.PinOut) (*w25q, error) {
	conn, err := port.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, err
	}
	d := &w25q{conn: conn, cs: cs}
	buf := []byte{cmdReadID, 0, 0, 0}
	if err := d.tx(buf, buf); err != nil {
		return nil, err
	}
	if [3]byte{buf[1], buf[2], buf[3]} != deviceID {
		return nil, errmsg.OpenFailed
	}
	return d, nil
}

func (d *w25q) ReadPage(addr uint32, buf []byte) error {
	if len(buf) > constant.PageSize {
		return errmsg.OutOfRange
	}
	w := make([]byte, 4+len(buf))
	r := make([]byte, 4+len(buf))
	w[0] = cmdReadData
	w[1] = byte(addr >> 16)
	w[2] = byte(addr >> 8)
	w[3] = byte(addr)
	if err := d.tx(w, r); err != nil {
		return err
	}
	copy(buf, r[4:])
	return nil
}

func (d *w25q) WritePage(addr uint32, buf []byte) error {
	if int(addr%constant.PageSize)+len(buf) > constant.PageSize {
		return errmsg.OutOfRange
	}
	w := make([]byte, 4+len(buf))
	w[0] = cmdPageProgram
	w[1] = byte(addr >> 16)
	w[2] = byte(addr >> 8)
	w[3] = byte(addr)
	copy(w[4:], buf)
	return d.tx(w, w)
}

func (d *w25q) EraseSector(addr uint32) error {
	w := []byte{cmdSectorErase, byte(addr >> 16), byte(addr >> 8), byte(addr)}
	return d.tx(w, w)
}

func (d *w25q) EnableWriting() error {
	w := []byte{cmdWriteEnable}
	return d.tx(w, w)
}

func (d *w25q) WaitUntilFree() error {
	end := time.Now().Add(busyTimeout)
	for {
		buf := []byte{cmdReadStatus, 0}
		if err := d.tx(buf, buf); err != nil {
			return err
		}
		if buf[1]&statusBusy == 0 {
			return nil
		}
		if time.Now().After(end) {
			return errmsg.Timeout
		}
		time.Sleep(100 * time.Microsecond)
	}
}

func (d *w25q) Capacity() uint32 {
	return DeviceSize
}

func (d *w25q) tx(w, r []byte) error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.conn.Tx(w, r); err != nil {
		d.cs.Out(gpio.High)
		return err
	}
	return d.cs.Out(gpio.High)
}
