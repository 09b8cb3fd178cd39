package record

import "strings"

// entityBlock renders one entity the way the metadata command's list view does.
func entityBlock(mode, name, length string) []string {
	return []string{
		"Mode           : " + mode,
		`Owner          : DESKTOP-42\me`,
		"LastWriteTime  : 1/2/2024 10:11:12 AM",
		"Name           : " + name,
		"CreationTime   : 1/1/2024 9:00:00 AM",
		"Attributes     : Directory",
		"LastAccessTime : 1/3/2024 8:00:00 AM",
		"Length         : " + length,
		`FullName       : C:\Users\me\` + name,
	}
}

// commandOutput joins two blank banner lines, the blocks separated by a
// blank line, and trailing padding, using CRLF terminators.
func commandOutput(blocks ...[]string) string {
	lines := []string{"", ""}
	for i, b := range blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, b...)
	}
	lines = append(lines, "", "")
	return strings.Join(lines, "\r\n") + "\r\n"
}

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line" + string(rune('A'+i%26))
	}
	return lines
}
