package input

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var intRx = regexp.MustCompile(`\d+`)

// Ints returns every run of decimal digits in s, in order of appearance.
// A run too large for an int is an error.
func Ints(s string) ([]int, error) {
	matches := intRx.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("bad number %q in %q: %w", m, s, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// SplitBlocks groups lines into blank-line separated blocks. Empty blocks
// are skipped.
func SplitBlocks(lines []string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
