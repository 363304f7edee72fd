package assembler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// sourceName is the file name reported for in-memory sources.
const sourceName = "<source>"

// srcLine is one physical source line and its line number.
type srcLine struct {
	text string
	num  int
}

// loader walks the include graph from an entry source and turns every line
// into nodes.
type loader struct {
	entryDir     string          // Directory of the entry file.
	includePaths []string        // Extra include search paths.
	seen         map[string]bool // Absolute paths already queued.
	queue        []string        // Included files waiting to be scanned.
	nodes        []*Node
	warn         func(format string, args ...interface{})
}

func newLoader(entryDir string, includePaths []string, warn func(string, ...interface{})) *loader {
	return &loader{
		entryDir:     entryDir,
		includePaths: includePaths,
		seen:         make(map[string]bool),
		warn:         warn,
	}
}

// loadFile loads the entry file at path and everything it includes.
func (l *loader) loadFile(path string) ([]*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrFileNotFound, "%q", path)
	}
	l.markSeen(path)
	return l.load(path, string(data))
}

// load scans the entry source, then every included file in the order the
// includes were first seen.
func (l *loader) load(name, src string) ([]*Node, error) {
	if err := l.scan(name, src); err != nil {
		return nil, err
	}

	for len(l.queue) > 0 {
		path := l.queue[0]
		l.queue = l.queue[1:]

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(ErrFileNotFound, "%q", path)
		}
		if err := l.scan(path, string(data)); err != nil {
			return nil, err
		}
	}
	return l.nodes, nil
}

// scan converts the lines of one file into nodes.
func (l *loader) scan(name, src string) error {
	raw := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	pending := make([]srcLine, len(raw))
	for i, text := range raw {
		pending[i] = srcLine{text: text, num: i + 1}
	}

	for len(pending) > 0 {
		cur := pending[0]
		pending = pending[1:]

		line := formatLine(cur.text)
		if line == "" {
			continue
		}
		pos := Position{File: name, Line: cur.num}

		if fields := strings.Fields(line); strings.EqualFold(fields[0], "include") {
			if len(fields) == 1 {
				l.warn("%s: include without file names", pos)
			}
			for _, f := range fields[1:] {
				if err := l.include(strings.Trim(f, `"'`), pos); err != nil {
					return err
				}
			}
			continue
		}

		if i := labelEnd(line); i >= 0 {
			n := parseLabel(line[:i+1])
			n.Pos = pos
			l.nodes = append(l.nodes, n)
			if rest := strings.TrimSpace(line[i+1:]); rest != "" {
				pending = append([]srcLine{{text: rest, num: cur.num}}, pending...)
			}
			continue
		}

		// Operand lists ending in a comma, and a bare db, continue on the
		// next non-blank line.
		for strings.HasSuffix(line, ",") || strings.EqualFold(line, "db") {
			next := ""
			for next == "" && len(pending) > 0 {
				next = formatLine(pending[0].text)
				pending = pending[1:]
			}
			if next == "" {
				break
			}
			line += " " + next
		}

		n, err := parseLine(line, pos)
		if err != nil {
			return err
		}
		l.nodes = append(l.nodes, n)
	}
	return nil
}

// include queues the named file unless it was queued before.
func (l *loader) include(name string, pos Position) error {
	if name == "" {
		return nil
	}

	path, ok := l.findSourceFile(name)
	if !ok {
		return newError(pos, errors.Wrapf(ErrFileNotFound, "%q", name))
	}
	if l.markSeen(path) {
		l.queue = append(l.queue, path)
	}
	return nil
}

// markSeen records path and returns false if it had been recorded before.
func (l *loader) markSeen(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if l.seen[abs] {
		return false
	}
	l.seen[abs] = true
	return true
}

// findSourceFile returns the path of file as-is if it exists on disk. If not,
// it looks next to the entry file and then in the include search paths.
func (l *loader) findSourceFile(file string) (string, bool) {
	candidates := []string{file}
	if !filepath.IsAbs(file) {
		candidates = append(candidates, filepath.Join(l.entryDir, file))
		for _, inc := range l.includePaths {
			candidates = append(candidates, filepath.Join(inc, file))
		}
	}

	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			return path, true
		}
	}
	return "", false
}

// formatLine strips the comment and surrounding whitespace from a line.
func formatLine(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
