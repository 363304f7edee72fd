package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/c8asm/assembler"
)

func main() {
	config := parseArgs()
	defer glog.Flush()

	asm := assembler.New()
	asm.IncludePaths = config.Includes

	if config.Dump {
		dumpSource(asm, config)
	}

	glog.V(1).Infof("assembling %s at %#x", config.Input, config.Base)
	code, err := asm.AssembleFile(config.Input, config.Base)
	for _, w := range asm.Warnings() {
		glog.Warning(w)
	}
	if err != nil {
		glog.Exitf("%v", err)
	}

	if config.List {
		listing, err := asm.Assembly().Listing()
		if err != nil {
			glog.Exitf("%v", err)
		}
		fmt.Print(listing)
	}

	if err := os.WriteFile(config.Output, code, 0644); err != nil {
		glog.Exitf("error writing output file: %v", err)
	}
	glog.V(1).Infof("wrote %d bytes to %s", len(code), config.Output)
}

// dumpSource prints the units loaded from the input, before any resolution.
func dumpSource(asm *assembler.Assembler, c *Config) {
	nodes, err := asm.Load(c.Input)
	if err != nil {
		glog.Exitf("%v", err)
	}
	pp.Fprintln(os.Stderr, nodes)
}
