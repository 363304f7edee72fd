package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/c8asm/assembler"
)

// Config defines program configuration.
type Config struct {
	Includes []string // Include search paths.
	Input    string   // Input source file to build.
	Output   string   // Path to store the binary in.
	Base     uint32   // Address the program is loaded at.
	List     bool     // Print a listing to stdout.
	Dump     bool     // Pretty-print the parsed source units to stderr.
	Verbose  bool     // Log progress.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
func parseArgs() *Config {
	opt := arg.New("c8asm")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "b", "base", "Base address of the program.", "0x200", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "I", "include", "Colon-separated list of include search paths.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "l", "list", "Print an assembly listing to stdout.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "d", "dump", "Print the parsed source to stderr.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log progress to stderr.", false, false, arg.VarBool, nil)
	opt.SetPositional("INPUT", "Source file to assemble.", "", true, arg.VarString)
	opt.SetPositional("OUTPUT", "Binary file to write.", "", true, arg.VarString)
	opt.SetPositional("OFFSET", "Base address, overriding --base.", "", false, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	c := Config{
		Input:   opt.GetPosString("INPUT"),
		Output:  opt.GetPosString("OUTPUT"),
		List:    opt.GetBool("list"),
		Dump:    opt.GetBool("dump"),
		Verbose: opt.GetBool("verbose"),
	}

	base := opt.GetString("base")
	if offset := opt.GetPosString("OFFSET"); offset != "" {
		base = offset
	}
	b, err := assembler.ParseNumeric(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid base address: %v\n", err)
		os.Exit(1)
	}
	c.Base = uint32(b)

	if includes := opt.GetString("include"); len(includes) > 0 {
		c.Includes = filteredSplit(includes, ":")
	}

	setupLogging(c.Verbose)
	return &c
}

// setupLogging routes glog to stderr. Verbose runs enable V(1).
func setupLogging(verbose bool) {
	flag.Set("logtostderr", "true")
	if verbose {
		flag.Set("v", "1")
	}
	flag.CommandLine.Parse(nil)
}

// filteredSplit splits value by sep and returns the resulting list, minus empty entries.
func filteredSplit(value, sep string) []string {
	var out []string
	for _, s := range strings.Split(value, sep) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
