package assembler_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/Urethramancer/c8asm/assembler"
	"github.com/Urethramancer/c8asm/chip8"
)

func load(t *testing.T, src string) []*assembler.Node {
	t.Helper()
	nodes, err := assembler.New().LoadSource(src)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	return nodes
}

func TestOffsets(t *testing.T) {
	nodes := load(t, "CLS\nCLS\nlbl:\ndb 1, 2, 3\nafter: RET")
	a, err := assembler.NewAssembly(nodes, chip8.DefaultBase)
	if err != nil {
		t.Fatal(err)
	}

	want := []uint32{0x200, 0x202, 0x204, 0x204, 0x207, 0x207}
	if len(a.Nodes) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(a.Nodes), len(want))
	}
	for i, n := range a.Nodes {
		if n.Offset != want[i] {
			t.Errorf("node %d (%s): offset %#x, want %#x", i, n, n.Offset, want[i])
		}
	}
}

func TestDefinesAreNotTransitive(t *testing.T) {
	nodes := load(t, "define X 5\ndefine Y X\nLD V0, X\nLD V1, Y")
	a, err := assembler.NewAssembly(nodes, chip8.DefaultBase)
	if err != nil {
		t.Fatal(err)
	}

	if got := a.Nodes[2].Operands[1].Raw; got != "5" {
		t.Errorf("X expanded to %q, want 5", got)
	}
	if got := a.Nodes[3].Operands[1].Raw; got != "X" {
		t.Errorf("Y expanded to %q, want X", got)
	}
}

func TestLastDefineWins(t *testing.T) {
	code, err := assembler.New().Assemble("define N 1\nLD V0, N\ndefine N 2", chip8.DefaultBase)
	if err != nil {
		t.Fatal(err)
	}
	if code[1] != 2 {
		t.Errorf("got %#x, want the last define", code[1])
	}
}

func TestResolveLabelsRunsOnce(t *testing.T) {
	nodes := load(t, "JP end\nend: RET")
	a, err := assembler.NewAssembly(nodes, chip8.DefaultBase)
	if err != nil {
		t.Fatal(err)
	}

	if err := a.ResolveLabels(); err != nil {
		t.Fatal(err)
	}
	if got := a.Nodes[0].Operands[0].Raw; got != "514" {
		t.Fatalf("label resolved to %q, want 514", got)
	}

	// Rebasing after resolution must not move already-resolved addresses.
	for _, n := range a.Nodes {
		n.Offset += 0x100
	}
	if err := a.ResolveLabels(); err != nil {
		t.Fatal(err)
	}
	if got := a.Nodes[0].Operands[0].Raw; got != "514" {
		t.Errorf("second ResolveLabels changed the operand to %q", got)
	}

	code, err := a.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if code[0] != 0x12 || code[1] != 0x02 {
		t.Errorf("unexpected code % X", code)
	}
}

func TestAssemblyString(t *testing.T) {
	nodes := load(t, "start:\nCLS\ndb 1")
	a, err := assembler.NewAssembly(nodes, chip8.DefaultBase)
	if err != nil {
		t.Fatal(err)
	}

	want := "0x0200 label start:\n0x0200 instruction CLS\n0x0202 directive db 1\n"
	if got := a.String(); got != want {
		t.Errorf("String():\n%s\nwant:\n%s", got, want)
	}
}

func TestListing(t *testing.T) {
	nodes := load(t, "start:\nJP start\ntext \"HELLO\"")
	a, err := assembler.NewAssembly(nodes, chip8.DefaultBase)
	if err != nil {
		t.Fatal(err)
	}

	out, err := a.Listing()
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}

	checks := []struct {
		prefix string
		suffix string
	}{
		{"0200  ", "start:"},
		{"0200  12 00", "    JP 512"},
		{"0202  48 45 4C 4C ...", `    text "HELLO"`},
	}
	for i, c := range checks {
		if !strings.HasPrefix(lines[i], c.prefix) || !strings.HasSuffix(lines[i], c.suffix) {
			t.Errorf("line %d = %q, want prefix %q and suffix %q", i, lines[i], c.prefix, c.suffix)
		}
	}
}

func TestLabelAddressOutOfRange(t *testing.T) {
	_, err := assembler.New().Assemble("JP end\noffset 0xFFFF\nend: CLS", chip8.DefaultBase)
	if errors.Cause(err) != assembler.ErrInvalidOpcode {
		t.Fatalf("expected invalid opcode, got %v", err)
	}
	var aerr *assembler.Error
	if !errors.As(err, &aerr) || aerr.Pos.Line != 1 {
		t.Errorf("expected the error at the JP line, got %v", err)
	}

	// The highest address a word can hold still resolves.
	code, err := assembler.New().Assemble("dw end\noffset 0xFFFB\nend:", 0)
	if err != nil {
		t.Fatal(err)
	}
	if code[0] != 0xFF || code[1] != 0xFD {
		t.Errorf("got % X, want FF FD", code[:2])
	}
}
