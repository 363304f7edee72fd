package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/c8asm/assembler"
)

// Config defines program configuration.
type Config struct {
	Input  string // Binary image to disassemble.
	Output string // Source file to write; stdout if empty.
	Base   uint32 // Address the image is loaded at.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
func parseArgs() *Config {
	opt := arg.New("c8dis")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "b", "base", "Address the image is loaded at.", "0x200", false, arg.VarString, nil)
	opt.SetPositional("INPUT", "Binary image to disassemble.", "", true, arg.VarString)
	opt.SetPositional("OUTPUT", "Source file to write. Defaults to stdout.", "", false, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	base, err := assembler.ParseNumeric(opt.GetString("base"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid base address: %v\n", err)
		os.Exit(1)
	}

	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse(nil)

	return &Config{
		Input:  opt.GetPosString("INPUT"),
		Output: opt.GetPosString("OUTPUT"),
		Base:   uint32(base),
	}
}
