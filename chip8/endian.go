package chip8

import (
	"encoding/binary"
)

// AppendWord appends w to b, high byte first.
func AppendWord(b []byte, w uint16) []byte {
	return binary.BigEndian.AppendUint16(b, w)
}

// BytesToWords interprets b as big-endian words. A trailing odd byte becomes
// the high byte of a final word.
func BytesToWords(b []byte) []uint16 {
	words := make([]uint16, 0, (len(b)+1)/WordSize)
	for ; len(b) >= WordSize; b = b[WordSize:] {
		words = append(words, binary.BigEndian.Uint16(b))
	}
	if len(b) == 1 {
		words = append(words, uint16(b[0])<<8)
	}
	return words
}
