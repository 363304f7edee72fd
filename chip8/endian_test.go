package chip8_test

import (
	"bytes"
	"testing"

	"github.com/Urethramancer/c8asm/chip8"
)

func TestBytesToWords(t *testing.T) {
	got := chip8.BytesToWords([]byte{0x12, 0x04, 0x00, 0xE0})
	if len(got) != 2 || got[0] != 0x1204 || got[1] != 0x00E0 {
		t.Errorf("got %04X", got)
	}
	if got := chip8.BytesToWords(nil); len(got) != 0 {
		t.Errorf("got %04X for no bytes", got)
	}
}

func TestBytesToWordsPadsOddLength(t *testing.T) {
	got := chip8.BytesToWords([]byte{0xA2, 0x10, 0x7F})
	if len(got) != 2 || got[0] != 0xA210 || got[1] != 0x7F00 {
		t.Errorf("got %04X", got)
	}

	// The input is left alone.
	in := []byte{0xA2, 0x10, 0x7F, 0xAA}[:3]
	chip8.BytesToWords(in)
	if in[:4][3] != 0xAA {
		t.Error("input was modified")
	}
}

func TestAppendWord(t *testing.T) {
	got := chip8.AppendWord([]byte{0x01}, 0xF31E)
	want := []byte{0x01, 0xF3, 0x1E}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}
