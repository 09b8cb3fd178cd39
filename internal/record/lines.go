package record

import "strings"

const utf8BOM = "\ufeff"

// SplitLines splits captured command output into lines.
// It accepts \r\n, \n and lone \r terminators and strips a leading byte
// order mark. A final terminator does not produce a trailing empty line.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, utf8BOM)
	if text == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
