package handhistory

import "strings"

// SplitHands divides a raw line sequence into per-hand blocks. A block
// runs from one header line (inclusive) to the next header line
// (exclusive). Lines before the first header are dropped, so every
// yielded block starts with a header. Blocks are fully independent of
// each other.
func SplitHands(lines []string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if patterns.header.MatchString(line) {
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = []string{line}
			continue
		}
		if current == nil {
			// Leading fragment before the first header.
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}
