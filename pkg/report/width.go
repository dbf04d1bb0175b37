// Package report renders the starred-repository recap as fixed-width boxed
// text panels.
//
// Panel alignment depends on measured display width rather than character
// count, so wide CJK glyphs and emoji in repository descriptions do not
// break the box borders.
package report

import (
	"strings"

	"golang.org/x/text/width"
)

// DisplayWidth measures the number of terminal columns s occupies:
//   - variation selectors (U+FE00..U+FE0F) and the zero-width joiner
//     (U+200D) contribute 0
//   - East-Asian Wide and Fullwidth characters contribute 2
//   - code points above U+1F300 contribute 2 (a proxy for emoji-range
//     symbols)
//   - everything else contributes 1
//
// The heuristic is intentionally approximate: it is not grapheme-cluster
// aware and will misjudge some sequences relative to true terminal
// rendering. It is kept as-is for alignment parity with existing snapshots;
// do not replace it with a "more correct" width algorithm.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch {
		case r >= 0xFE00 && r <= 0xFE0F:
			// zero width
		case r == 0x200D:
			// zero width
		case eastAsianWide(r):
			w += 2
		case r > 0x1F300:
			w += 2
		default:
			w++
		}
	}
	return w
}

func eastAsianWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// PadLine right-pads content with spaces until its measured display width
// equals total. Precondition: the content's display width must not exceed
// total — callers truncate first. Content already at or past the target is
// returned unchanged.
func PadLine(content string, total int) string {
	pad := total - DisplayWidth(content)
	if pad <= 0 {
		return content
	}
	return content + strings.Repeat(" ", pad)
}

// truncate cuts s to at most n characters (runes, not columns).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
