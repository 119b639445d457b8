package shared

import "strings"

// WrapText wraps s to the given width breaking at spaces; it preserves
// existing newlines and does not break words unless a single word exceeds width.
func WrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) <= width {
				line += " " + w
			} else {
				out = append(out, line)
				line = w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Window returns at most height lines of lines starting at offset, and the
// offset actually used after clamping. A height <= 0 means unlimited.
func Window(lines []string, offset, height int) ([]string, int) {
	if height <= 0 || len(lines) <= height {
		return lines, 0
	}
	maxOffset := len(lines) - height
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return lines[offset : offset+height], offset
}
