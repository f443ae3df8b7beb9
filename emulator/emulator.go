// Package emulator assembles the Aurora-16 machine: flat memory, the bus,
// the CPU and the default device set, plus image loading and the run loop.
package emulator

import (
	stdio "io"
	"os"

	"github.com/ganeshsjsu/aurora-softcpu/cpu"
	"github.com/ganeshsjsu/aurora-softcpu/internal/hexdump"
	"github.com/ganeshsjsu/aurora-softcpu/io"
)

// RunOptions control one run loop.
type RunOptions struct {
	CycleLimit uint64 // 0 means no limit
	Trace      bool   // Log one line per instruction
}

// Emulator owns the memory, the bus that borrows it, the CPU, and the three
// default devices. Devices attach exactly once, in console/timer/LED order.
type Emulator struct {
	Memory *cpu.Memory
	Bus    *cpu.Bus
	Cpu    *cpu.Cpu

	Console *io.Console
	Timer   *io.Timer
	Leds    *io.LedPanel
}

// New builds a machine with the default devices attached.
func New() (emu *Emulator) {
	emu = &Emulator{
		Memory:  &cpu.Memory{},
		Console: io.NewConsole(),
		Timer:   &io.Timer{},
		Leds:    &io.LedPanel{},
	}
	emu.Bus = cpu.NewBus(emu.Memory)
	emu.Bus.AttachDevice(emu.Console)
	emu.Bus.AttachDevice(emu.Timer)
	emu.Bus.AttachDevice(emu.Leds)
	emu.Cpu = cpu.NewCpu(emu.Bus)
	return
}

// Reset clears memory and restores the CPU to its power-on state.
func (emu *Emulator) Reset() {
	*emu.Memory = cpu.Memory{}
	emu.Cpu.Reset()
}

// LoadImage copies a raw byte image into memory at origin.
func (emu *Emulator) LoadImage(image []uint8, origin uint16) error {
	return emu.Memory.LoadBlock(image, origin)
}

// LoadBinaryFile reads a raw image file and loads it at origin.
func (emu *Emulator) LoadBinaryFile(path string, origin uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return emu.LoadImage(data, origin)
}

// SaveMemoryDump writes the full 64 KiB address space to a file.
func (emu *Emulator) SaveMemoryDump(path string) error {
	return os.WriteFile(path, emu.Memory.Bytes(), 0o644)
}

// Dump hex-dumps count bytes of memory starting at start.
func (emu *Emulator) Dump(w stdio.Writer, start uint16, count int) error {
	if int(start)+count > cpu.MEMORY_SIZE {
		return ErrDumpRange
	}
	return hexdump.Write(w, emu.Memory.Bytes()[start:int(start)+count], start)
}

// Run steps the CPU until HALT, a fault, or the cycle limit. Each successful
// step counts as one cycle. A cycle-limit exit is a normal termination; the
// register state stays inspectable after any exit.
func (emu *Emulator) Run(options RunOptions) (cycles uint64) {
	for options.CycleLimit == 0 || cycles < options.CycleLimit {
		if !emu.Cpu.Step(options.Trace) {
			return
		}
		cycles++
	}
	return
}
