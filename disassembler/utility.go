package disassembler

import (
	"fmt"
	"strings"
)

func reg(r uint16) string {
	return fmt.Sprintf("v%x", r)
}

func nibble(v uint16) string {
	return fmt.Sprintf("%d", v)
}

func byteImm(v uint16) string {
	return fmt.Sprintf("0x%02X", v)
}

func wordImm(v uint16) string {
	return fmt.Sprintf("0x%04X", v)
}

func hexAddress(a uint16) string {
	return fmt.Sprintf("0x%03X", a)
}

func join(ops ...string) string {
	return strings.Join(ops, ", ")
}

// labelName generates a label string based on the address and its context.
func labelName(addr uint32, labelType LabelType) string {
	prefix := "dat_"
	switch labelType {
	case JumpTarget:
		prefix = "loc_"
	case SubroutineEntry:
		prefix = "sub_"
	}
	return fmt.Sprintf("%s%04X", prefix, addr)
}
