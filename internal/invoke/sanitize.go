// Copyright Hadayhoc Technology, 2026. All rights reserved.

package invoke

import "strings"

// Fence markers a model may wrap its answer in despite the instruction to
// return a raw string. The HTML-flavored fence is checked first.
const (
	fenceHTML = "```html"
	fenceBare = "```"
)

// Sanitize strips matched leading/trailing code fences from a model
// response and trims surrounding whitespace. Fences strip until none
// remain, so a bare fence wrapping an html fence comes off in one call.
// Unmatched or absent fences leave the string unchanged except for
// trimming. Idempotent.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		next := stripFence(s, fenceHTML)
		next = stripFence(next, fenceBare)
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}

// stripFence removes an opening fence and its closing counterpart when both
// are present and do not overlap.
func stripFence(s, open string) string {
	if !strings.HasPrefix(s, open) || !strings.HasSuffix(s, fenceBare) {
		return s
	}
	if len(s) < len(open)+len(fenceBare) {
		return s
	}
	inner := s[len(open) : len(s)-len(fenceBare)]
	return strings.TrimSpace(inner)
}
