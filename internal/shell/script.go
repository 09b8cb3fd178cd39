package shell

import (
	"strings"

	"github.com/vvka-141/winentity/pkg/winentity"
)

// utf8Prelude switches the console encoding so non-ASCII names survive
// the pipe.
const utf8Prelude = "[Console]::OutputEncoding = [System.Text.Encoding]::UTF8; "

// selectProperties is the projection whose labels the default record
// schema understands. Order here is the order of lines in each block.
const selectProperties = "Select-Object Mode, " +
	"@{Name='Owner'; Expression={(Get-Acl -LiteralPath $_.FullName).Owner}}, " +
	"LastWriteTime, Name, CreationTime, Attributes, LastAccessTime, Length, FullName"

// Script returns the PowerShell command text for kind at path.
func Script(kind winentity.QueryKind, path string) string {
	cmdlet := "Get-ChildItem"
	if kind == winentity.QueryItem {
		cmdlet = "Get-Item"
	}

	var b strings.Builder
	b.WriteString(utf8Prelude)
	b.WriteString(cmdlet)
	b.WriteString(" -Force -LiteralPath ")
	b.WriteString(QuoteLiteral(path))
	b.WriteString(" | ")
	b.WriteString(selectProperties)
	b.WriteString(" | Format-List")
	return b.String()
}

// Args returns the full argument vector passed to the shell executable.
func Args(kind winentity.QueryKind, path string) []string {
	return []string{"-NoProfile", "-NonInteractive", "-Command", Script(kind, path)}
}

// QuoteLiteral wraps s in single quotes, doubling embedded quotes.
// PowerShell performs no expansion inside single-quoted strings.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
