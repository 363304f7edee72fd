package assembler

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Urethramancer/c8asm/chip8"
)

// hasAddressArgs returns true for directives whose arguments may name labels.
func hasAddressArgs(mnemonic string) bool {
	switch strings.ToLower(mnemonic) {
	case "db", "dw":
		return true
	}
	return false
}

// directiveSize calculates the byte size of a directive for the offset pass.
func directiveSize(n *Node) (uint32, error) {
	switch strings.ToLower(n.Mnemonic) {
	case "db":
		return uint32(len(n.Args)), nil

	case "dw":
		return uint32(len(n.Args)) * chip8.WordSize, nil

	case "text":
		if len(n.Args) == 0 {
			return 0, errors.Wrap(ErrInvalidDirective, "text requires a string")
		}
		var size uint32
		for _, s := range n.Args {
			size += uint32(len(s)) + 1
		}
		return size, nil

	case "offset":
		if len(n.Args) != 1 {
			return 0, errors.Wrap(ErrInvalidDirective, "offset requires a single count argument")
		}
		count, err := ParseNumeric(n.Args[0])
		if err != nil {
			return 0, errors.Wrap(err, "invalid count for offset")
		}
		return uint32(count), nil

	default:
		return 0, errors.Wrapf(ErrInvalidDirective, "%q", n.Mnemonic)
	}
}

// generateDirectiveCode generates the binary data for a directive.
func generateDirectiveCode(n *Node) ([]byte, error) {
	switch strings.ToLower(n.Mnemonic) {
	case "db":
		out := make([]byte, 0, len(n.Args))
		for _, arg := range n.Args {
			val, err := ParseNumeric(arg)
			if err != nil {
				return nil, err
			}
			if val > chip8.MaxByte {
				return nil, errors.Wrapf(ErrInvalidNumber, "%q does not fit in a byte", arg)
			}
			out = append(out, byte(val))
		}
		return out, nil

	case "dw":
		out := make([]byte, 0, len(n.Args)*chip8.WordSize)
		for _, arg := range n.Args {
			val, err := ParseNumeric(arg)
			if err != nil {
				return nil, err
			}
			out = chip8.AppendWord(out, val)
		}
		return out, nil

	case "text":
		var out []byte
		for _, s := range n.Args {
			out = append(out, s...)
			out = append(out, 0)
		}
		return out, nil

	case "offset":
		size, err := directiveSize(n)
		if err != nil {
			return nil, err
		}
		return make([]byte, size), nil

	default:
		return nil, errors.Wrapf(ErrInvalidDirective, "%q", n.Mnemonic)
	}
}
