// Package chip8 holds the architecture constants shared by the assembler and
// the disassembler.
package chip8

const (
	// DefaultBase is the address programs are loaded at by the interpreter.
	DefaultBase = 0x200
	// Registers is the number of general purpose registers (V0-VF).
	Registers = 16
	// WordSize is the size of an encoded instruction in bytes.
	WordSize = 2
)

// Field limits for the operand slots of an opcode.
const (
	MaxAddress = 0x0FFF // nnn
	MaxByte    = 0x00FF // kk
	MaxNibble  = 0x000F // n, x, y
)

// Opcodes for the base instruction set.
const (
	OPSYS  = 0x0000 // SYS addr
	OPCLS  = 0x00E0 // CLS
	OPRET  = 0x00EE // RET
	OPJP   = 0x1000 // JP addr
	OPCALL = 0x2000 // CALL addr
	OPSEi  = 0x3000 // SE Vx, byte
	OPSNEi = 0x4000 // SNE Vx, byte
	OPSE   = 0x5000 // SE Vx, Vy
	OPLDi  = 0x6000 // LD Vx, byte
	OPADDi = 0x7000 // ADD Vx, byte
	OPLD   = 0x8000 // LD Vx, Vy
	OPOR   = 0x8001 // OR Vx, Vy
	OPAND  = 0x8002 // AND Vx, Vy
	OPXOR  = 0x8003 // XOR Vx, Vy
	OPADD  = 0x8004 // ADD Vx, Vy
	OPSUB  = 0x8005 // SUB Vx, Vy
	OPSHR  = 0x8006 // SHR Vx {, Vy}
	OPSUBN = 0x8007 // SUBN Vx, Vy
	OPSHL  = 0x800E // SHL Vx {, Vy}
	OPSNE  = 0x9000 // SNE Vx, Vy
	OPLDI  = 0xA000 // LD I, addr
	OPJPV0 = 0xB000 // JP V0, addr
	OPRND  = 0xC000 // RND Vx, byte
	OPDRW  = 0xD000 // DRW Vx, Vy, nibble
	OPSKP  = 0xE09E // SKP Vx
	OPSKNP = 0xE0A1 // SKNP Vx

	OPLDVxDT  = 0xF007 // LD Vx, DT
	OPLDVxK   = 0xF00A // LD Vx, K
	OPLDDTVx  = 0xF015 // LD DT, Vx
	OPLDSTVx  = 0xF018 // LD ST, Vx
	OPADDIVx  = 0xF01E // ADD I, Vx
	OPLDFVx   = 0xF029 // LD F, Vx
	OPLDBVx   = 0xF033 // LD B, Vx
	OPLDIVx   = 0xF055 // LD [I], Vx
	OPLDVxI   = 0xF065 // LD Vx, [I]
	OPLDHFVx  = 0xF030 // LD HF, Vx (SUPER-CHIP)
	OPLDRVx   = 0xF075 // LD R, Vx (SUPER-CHIP)
	OPLDVxR   = 0xF085 // LD Vx, R (SUPER-CHIP)
	OPSAVEXY  = 0x5001 // LD Vx, Vy, I
	OPLOADXY  = 0x5002 // LD I, Vx, Vy
	OPSCD     = 0x00C0 // SCD nibble (SUPER-CHIP)
	OPSCR     = 0x00FB // SCR (SUPER-CHIP)
	OPSCL     = 0x00FC // SCL (SUPER-CHIP)
	OPEXIT    = 0x00FD // EXIT (SUPER-CHIP)
	OPLOW     = 0x00FE // LOW (SUPER-CHIP)
	OPHIGH    = 0x00FF // HIGH (SUPER-CHIP)
)
