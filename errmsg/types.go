package errmsg

import "errors"

var (
	Timeout       = errors.New("timeout")
	WrongMode     = errors.New("wrong mode")
	TableFull     = errors.New("table full")
	OpenFailed    = errors.New("open failed")
	OutOfRange    = errors.New("out of range")
	OutOfSpace    = errors.New("out of space")
	InvalidFile   = errors.New("invalid file")
	TableNotFound = errors.New("table not found")
	WriteDisabled = errors.New("write disabled")
)
