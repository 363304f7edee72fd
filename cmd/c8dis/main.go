package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/Urethramancer/c8asm/disassembler"
)

func main() {
	config := parseArgs()
	defer glog.Flush()

	code, err := os.ReadFile(config.Input)
	if err != nil {
		glog.Exitf("error reading input file: %v", err)
	}

	text, err := disassembler.Disassemble(code, config.Base)
	if err != nil {
		glog.Exitf("disassembly error: %v", err)
	}

	if config.Output == "" {
		fmt.Print(text)
		return
	}

	if err := os.WriteFile(config.Output, []byte(text), 0644); err != nil {
		glog.Exitf("error writing output file: %v", err)
	}
	fmt.Printf("Disassembly written to %s\n", config.Output)
}
