package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/maybeutf8"
)

func main() {
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	names := [][]byte{
		[]byte("plain-ascii-name.txt"),
		{99, 97, 102, 233},
		[]byte("καφές.txt"),
		{0xff, 0xfe, 0x00, 0x01, 0x02},
	}
	var sink int
	for i := 0; i < 10000; i++ {
		v := maybeutf8.FromBytes(names[i%len(names)])
		sink += len(v.String())
		if s, ok := v.AsString(); ok {
			sink += len(s)
		}
		sink += len(v.ToSlice().AsBytes())
	}
	log.Printf("rendered %d bytes", sink)
	pprof.WriteHeapProfile(f)
}
