// Command softcpu is the Aurora-16 toolchain driver: it assembles source
// files into raw images, runs images in the emulator, and hex-dumps memory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ganeshsjsu/aurora-softcpu/cpu"
	"github.com/ganeshsjsu/aurora-softcpu/emulator"
)

var errUsage = errors.New("usage")

func usage() {
	fmt.Println("Aurora-16 Software CPU")
	fmt.Println("Usage:")
	fmt.Println("  softcpu assemble <source.asm> -o <program.bin> [--origin 0x0000]")
	fmt.Println("  softcpu run <program.bin> [--origin 0x0000] [--entry 0x0000] [--cycles N] [--trace]")
	fmt.Println("  softcpu dump <program.bin> --start 0x0000 --length 64 [--origin 0x0000]")
}

// parseMixed parses flags that may be interleaved with positional arguments,
// as in "assemble prog.asm -o prog.bin". The flag package stops at the first
// positional, so parsing resumes after each one.
func parseMixed(flags *flag.FlagSet, args []string) (positional []string, err error) {
	for {
		if err = flags.Parse(args); err != nil {
			return nil, err
		}
		if flags.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, flags.Arg(0))
		args = flags.Args()[1:]
	}
}

// parseWord accepts the same radix forms as assembler source.
func parseWord(text string) (uint16, bool) {
	value, ok := cpu.ParseNumber(text)
	if !ok {
		return 0, false
	}
	return uint16(value), true
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "assemble":
		err = cmdAssemble(os.Args[2:])
	case "run":
		err = cmdRun(os.Args[2:])
	case "dump":
		err = cmdDump(os.Args[2:])
	case "--help", "help":
		usage()
		return
	default:
		err = errUsage
	}

	if errors.Is(err, errUsage) {
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func cmdAssemble(args []string) error {
	flags := flag.NewFlagSet("assemble", flag.ContinueOnError)
	output := flags.String("o", "a.bin", "output image path")
	originText := flags.String("origin", "0", "load origin of the image")
	positional, err := parseMixed(flags, args)
	if err != nil || len(positional) != 1 {
		return errUsage
	}

	origin, ok := parseWord(*originText)
	if !ok {
		return fmt.Errorf("invalid origin: %v", *originText)
	}

	asm := &cpu.Assembler{}
	result := asm.AssembleFile(positional[0], cpu.AssemblerOptions{Origin: origin})
	if !result.Ok {
		for _, message := range result.Messages {
			log.Print(message)
		}
		return errors.New("assembly failed")
	}

	return os.WriteFile(*output, result.Bytes, 0o644)
}

func cmdRun(args []string) error {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	originText := flags.String("origin", "0", "load origin of the image")
	entryText := flags.String("entry", "", "entry point, defaults to the origin")
	cyclesText := flags.String("cycles", "0", "cycle limit, 0 for unlimited")
	trace := flags.Bool("trace", false, "log each executed instruction")
	positional, err := parseMixed(flags, args)
	if err != nil || len(positional) != 1 {
		return errUsage
	}

	origin, ok := parseWord(*originText)
	if !ok {
		return fmt.Errorf("invalid origin: %v", *originText)
	}
	entry := origin
	if *entryText != "" {
		if entry, ok = parseWord(*entryText); !ok {
			return fmt.Errorf("invalid entry: %v", *entryText)
		}
	}
	cycles, ok := cpu.ParseNumber(*cyclesText)
	if !ok || cycles < 0 {
		return fmt.Errorf("invalid cycle limit: %v", *cyclesText)
	}

	emu := emulator.New()
	emu.Console.Output = os.Stdout
	if err := emu.LoadBinaryFile(positional[0], origin); err != nil {
		return fmt.Errorf("unable to load %v: %w", positional[0], err)
	}
	emu.Cpu.Registers.Pc = entry
	emu.Run(emulator.RunOptions{CycleLimit: uint64(cycles), Trace: *trace})
	return nil
}

func cmdDump(args []string) error {
	flags := flag.NewFlagSet("dump", flag.ContinueOnError)
	originText := flags.String("origin", "0", "load origin of the image")
	startText := flags.String("start", "", "first address to dump")
	lengthText := flags.String("length", "", "number of bytes to dump")
	positional, err := parseMixed(flags, args)
	if err != nil || len(positional) != 1 || *startText == "" || *lengthText == "" {
		return errUsage
	}

	origin, ok := parseWord(*originText)
	if !ok {
		return fmt.Errorf("invalid origin: %v", *originText)
	}
	start, ok := parseWord(*startText)
	if !ok {
		return fmt.Errorf("invalid start address: %v", *startText)
	}
	length, ok := cpu.ParseNumber(*lengthText)
	if !ok || length < 0 {
		return fmt.Errorf("invalid length: %v", *lengthText)
	}

	emu := emulator.New()
	if err := emu.LoadBinaryFile(positional[0], origin); err != nil {
		return fmt.Errorf("unable to load %v: %w", positional[0], err)
	}
	return emu.Dump(os.Stdout, start, int(length))
}
