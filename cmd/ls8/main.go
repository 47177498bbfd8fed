package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/bitvex/ls8/cpu"
	"github.com/bitvex/ls8/emulator"
)

func main() {
	var assemble bool
	var output string
	var verbose bool
	var dump bool

	flag.BoolVar(&assemble, "a", false, "Treat the program as mnemonic assembly")
	flag.StringVar(&output, "o", "-", "PRN output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "d", false, "Dump machine state on fatal error")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if flag.NArg() == 0 {
		// No program is still a runnable machine; it halts at once.
		fmt.Println("Not a valid program")
		fmt.Println("HALTING NOW")
	} else {
		path := flag.Arg(0)
		inf, err := os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer inf.Close()

		if assemble {
			asm := &cpu.Assembler{Verbose: verbose}
			for attr, value := range emu.Defines() {
				asm.Predefine(attr, value)
			}
			emu.Program, err = asm.Parse(inf)
		} else {
			emu.Program, err = cpu.LoadBinary(inf)
		}
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	}

	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Console.Output = ouf
	}

	err := emu.Reset()
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = emu.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprint(os.Stderr, emu.Cpu.String())
		if dump {
			pp.Fprintln(os.Stderr, emu.Cpu)
		}
		os.Exit(1)
	}
}
