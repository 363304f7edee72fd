package main

import (
	"os"
	"testing"
)

func TestParseArgs(t *testing.T) {
	saved := os.Args
	defer func() { os.Args = saved }()

	tests := []struct {
		args   []string
		input  string
		output string
		base   uint32
	}{
		{[]string{"c8dis", "game.ch8"}, "game.ch8", "", 0x200},
		{[]string{"c8dis", "game.ch8", "game.asm"}, "game.ch8", "game.asm", 0x200},
		{[]string{"c8dis", "-b", "0x600", "game.ch8"}, "game.ch8", "", 0x600},
	}
	for _, tc := range tests {
		os.Args = tc.args
		c := parseArgs()
		if c.Input != tc.input || c.Output != tc.output || c.Base != tc.base {
			t.Errorf("%q: got input %q, output %q, base %#x", tc.args, c.Input, c.Output, c.Base)
		}
	}
}
