package assembler

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/Urethramancer/c8asm/chip8"
)

// Operand is one instruction operand as written in the source.
// It is interpreted only when an instruction is encoded.
type Operand struct {
	Raw string
}

// IsRegister returns true if the operand is spelled as a register (V0-VF).
func (o Operand) IsRegister() bool {
	return IsRegister(o.Raw)
}

// Value parses the operand as a register index or a number.
func (o Operand) Value() (uint16, error) {
	if o.IsRegister() {
		return ParseRegister(o.Raw)
	}
	return ParseNumeric(o.Raw)
}

func (o Operand) String() string {
	return o.Raw
}

// IsRegister reports whether s starts with the register marker. This is a
// purely syntactic check; ParseRegister does the validation.
func IsRegister(s string) bool {
	return len(s) > 0 && (s[0] == 'V' || s[0] == 'v')
}

// ParseRegister converts "V0".."VF" (any case) to a register index.
func ParseRegister(s string) (uint16, error) {
	digits := s
	if IsRegister(digits) {
		digits = digits[1:]
	}

	val, err := strconv.ParseUint(digits, 16, 16)
	if err != nil || val >= chip8.Registers {
		return 0, errors.Wrapf(ErrInvalidRegister, "%q", s)
	}
	return uint16(val), nil
}

// ParseNumeric converts a numeric literal to its value. Accepted forms are
// hexadecimal (0x1F, #1F), binary (%1010), a quoted character ('A') and decimal.
func ParseNumeric(s string) (uint16, error) {
	// Character literal ('A')
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		inner := s[1 : len(s)-1]
		r, size := utf8.DecodeRuneInString(inner)
		if r == utf8.RuneError || size != len(inner) || r > 0xFFFF {
			return 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
		}
		return uint16(r), nil
	}

	digits, base := s, 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits, base = s[2:], 16
	case strings.HasPrefix(s, "#"):
		digits, base = s[1:], 16
	case strings.HasPrefix(s, "%"):
		digits, base = s[1:], 2
	}

	val, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	return uint16(val), nil
}
