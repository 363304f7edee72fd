package main

import (
	"os"
	"reflect"
	"testing"
)

func TestFilteredSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"lib", []string{"lib"}},
		{"lib:include", []string{"lib", "include"}},
		{" lib : :include: ", []string{"lib", "include"}},
		{"::", nil},
	}
	for _, tc := range tests {
		if got := filteredSplit(tc.in, ":"); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("filteredSplit(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseArgs(t *testing.T) {
	saved := os.Args
	defer func() { os.Args = saved }()

	tests := []struct {
		args     []string
		input    string
		output   string
		base     uint32
		includes []string
	}{
		{[]string{"c8asm", "in.asm", "out.bin"}, "in.asm", "out.bin", 0x200, nil},
		{[]string{"c8asm", "in.asm", "out.bin", "0x600"}, "in.asm", "out.bin", 0x600, nil},
		{[]string{"c8asm", "-b", "0x300", "-I", "lib:inc", "in.asm", "out.bin"}, "in.asm", "out.bin", 0x300, []string{"lib", "inc"}},
	}
	for _, tc := range tests {
		os.Args = tc.args
		c := parseArgs()
		if c.Input != tc.input || c.Output != tc.output || c.Base != tc.base {
			t.Errorf("%q: got input %q, output %q, base %#x", tc.args, c.Input, c.Output, c.Base)
		}
		if !reflect.DeepEqual(c.Includes, tc.includes) {
			t.Errorf("%q: got includes %q, want %q", tc.args, c.Includes, tc.includes)
		}
	}
}
