package w25q

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// W25Q64FV instruction set.
const (
	cmdWriteEnable = 0x06
	cmdPageProgram = 0x02
	cmdReadData    = 0x03
	cmdSectorErase = 0x20
	cmdReadStatus  = 0x05
	cmdReadID      = 0x9F
)

const (
	statusBusy = 0x01 // status register bit 0, write in progress
)

const (
	DeviceSize = 8 << 20 // 64 Mbit
)

const (
	busyTimeout = 400 * time.Millisecond // worst-case sector erase time
)

// JEDEC ID of the W25Q64FV.
var deviceID = [3]byte{0xEF, 0x40, 0x17}

type w25q struct {
	conn spi.Conn
	cs   gpio.PinOut
}
