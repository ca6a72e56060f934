// magpie runs a 6502 program image against one of this module's
// pluggable platform memory maps, feeding terminal input to the guest
// and printing its display output to standard out.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gtco/magpie/apple1"
	"github.com/gtco/magpie/cpu"
	"github.com/gtco/magpie/ehbasic"
	"github.com/gtco/magpie/memory"
)

const cyclesPerSlice = 2048

var (
	platformFlag = flag.String("platform", "apple1", "Platform memory map to emulate: apple1 or ehbasic")
	baseFlag     = flag.Uint("base", 0, "Base address to load the program image at (0 selects the platform default)")
)

func defaultBase(platform string) uint16 {
	if platform == "apple1" {
		return 0x4000
	}
	return 0x0000
}

func newBus(platform string) (memory.Bus, error) {
	switch platform {
	case "apple1":
		return apple1.New(os.Stdout), nil
	case "ehbasic":
		return ehbasic.New(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown platform %q (want apple1 or ehbasic)", platform)
	}
}

// readKeystrokes reads stdin line by line and forwards each completed
// line, followed by a carriage return ($0D), one byte at a time on lines. It
// runs on its own goroutine; the main loop never touches stdin
// directly, so there's no shared state to guard.
func readKeystrokes(lines chan<- byte, quit chan<- struct{}) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := scanner.Text()
		if text == "quit" {
			close(quit)
			return
		}
		for i := 0; i < len(text); i++ {
			lines <- text[i]
		}
		lines <- 0x0D
	}
	close(quit)
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <program-file>\n", os.Args[0])
		return
	}

	program, err := os.ReadFile(flag.Args()[0])
	if err != nil {
		log.Printf("can't read program file: %v", err)
		return
	}

	bus, err := newBus(*platformFlag)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	base := uint16(*baseFlag)
	if base == 0 {
		base = defaultBase(*platformFlag)
	}
	if err := bus.Load(program, base); err != nil {
		log.Printf("can't load program at $%04X: %v", base, err)
		return
	}

	chip := cpu.New(bus)
	if err := chip.Reset(); err != nil {
		log.Printf("reset failed: %v", err)
		return
	}

	keys := make(chan byte, 256)
	quit := make(chan struct{})
	go readKeystrokes(keys, quit)

	for chip.IsRunning() {
		select {
		case <-quit:
			return
		default:
		}
		if chip.KeyReady() {
			select {
			case k := <-keys:
				chip.KeyPressed(k)
			default:
			}
		}
		chip.Run(cyclesPerSlice)
		time.Sleep(time.Millisecond)
	}
}
