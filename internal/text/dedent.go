// Package text provides text manipulation helpers.
package text

import "strings"

// Dedent strips a common leading indent from all lines of s, allowing
// multi-line string literals to be written at the code's indentation
// level. The indent is taken from the first non-blank line. Leading
// blank lines and a trailing blank line are dropped; lines that do not
// share the indent are kept as-is.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	// Find the indent of the first non-blank line.
	var indent string
	start := 0
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent = line[:len(line)-len(trimmed)]
		start = i
		break
	}

	if len(lines) > start && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	out := make([]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		if stripped, ok := strings.CutPrefix(line, indent); ok {
			out = append(out, stripped)
		} else {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
