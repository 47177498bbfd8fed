package emulator

import (
	"errors"
	"iter"
	"maps"
	"os"

	"github.com/bitvex/ls8/cpu"
	"github.com/bitvex/ls8/device"
	"github.com/bitvex/ls8/internal"
)

var _emulator_defines = map[string]string{
	"PROGRAM_ORIGIN": "0",
}

// Emulator state. CPU + console + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables the per-cycle trace.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Console device.Console // Console device receiving PRN output.
}

// NewEmulator creates a new emulator writing to the standard output.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Console.Output = os.Stdout
	emu.Cpu.Output = &emu.Console

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset clears the machine and places the program image at address 0.
// An empty image is the valid "no program loaded" state; it is replaced
// by a single HLT so the machine halts immediately.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Reset()

	bin := emu.Program.Binary()
	if len(bin) == 0 {
		bin = []uint8{uint8(cpu.HLT)}
	}

	for addr, value := range bin {
		err = emu.Cpu.Ram.Write(addr, value)
		if err != nil {
			return
		}
	}

	return
}

// LineNo returns the current line number for the executing statement.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.Statement.LineNo
}

// Tick performs a single cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
	}

	return
}

// Run executes the loaded program until it halts or fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
