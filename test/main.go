package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/norfs/flashfat/chip/mem"
	"github.com/norfs/flashfat/constant"
	"github.com/norfs/flashfat/fat"
)

func main() {
	cfg := fat.DefaultConfig()
	cfg.Transport = mem.New(64 * constant.SectorSize)
	f, err := fat.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

	payloads := make([][]byte, 5)
	{
		for i := range payloads {
			buf := make([]byte, 217*(i+1)*(i+1))
			for j := range buf {
				buf[j] = byte(i + j)
			}
			payloads[i] = buf
			fi, err := f.NewFile()
			if err != nil {
				log.Fatal(err)
			}
			if fi != i {
				log.Fatal(fmt.Errorf("file %v allocated as %v", i, fi))
			}
			if _, err := f.Write(buf); err != nil {
				log.Fatal(err)
			}
			if err := f.CloseFile(); err != nil {
				log.Fatal(err)
			}
		}
	}
	{
		for i, want := range payloads {
			if err := f.OpenFile(i); err != nil {
				log.Fatal(err)
			}
			got := make([]byte, len(want))
			if _, err := f.Read(got); err != nil {
				log.Fatal(err)
			}
			if bytes.Compare(got, want) != 0 {
				log.Fatal(fmt.Errorf("file %v corrupt", i))
			}
			if err := f.CloseFile(); err != nil {
				log.Fatal(err)
			}
		}
	}
	{
		for _, e := range f.Files() {
			fmt.Printf("start %v length %v\n", e.Start(), e.Bytes())
		}
		if err := f.DeleteLastFile(); err != nil {
			log.Fatal(err)
		}
		if n := len(f.Files()); n != len(payloads)-1 {
			log.Fatal(fmt.Errorf("%v files after delete", n))
		}
	}
}
