package disassembler

import (
	"fmt"
	"strings"
)

// minStrLen is the shortest printable run rendered as text.
const minStrLen = 4

// bytesPerLine is the number of bytes in a db line.
const bytesPerLine = 8

// isTextByte checks if a byte can appear inside a quoted text argument.
// Quotes and the comment character would end the argument early.
func isTextByte(b byte) bool {
	return b >= 0x20 && b <= 0x7E && b != '"' && b != ';'
}

// formatData renders bytes that are not code. Zero-terminated printable runs
// become text directives; everything else becomes db lines.
func formatData(data []byte) string {
	var sb strings.Builder
	n := len(data)
	pending := 0
	for i := 0; i < n; {
		start := i
		for start < n && !isTextByte(data[start]) {
			start++
		}
		end := start
		for end < n && isTextByte(data[end]) {
			end++
		}

		if end < n && data[end] == 0 && end-start >= minStrLen {
			sb.WriteString(formatHexBytes(data[pending:start]))
			fmt.Fprintf(&sb, "    %-8s \"%s\"\n", "text", data[start:end])
			pending = end + 1
		}
		i = end + 1
	}
	sb.WriteString(formatHexBytes(data[pending:]))
	return sb.String()
}

// formatHexBytes formats a slice of bytes into db directives.
func formatHexBytes(data []byte) string {
	var sb strings.Builder
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}

		vals := make([]string, 0, end-i)
		for _, b := range data[i:end] {
			vals = append(vals, fmt.Sprintf("0x%02X", b))
		}
		fmt.Fprintf(&sb, "    %-8s %s\n", "db", strings.Join(vals, ", "))
	}
	return sb.String()
}
