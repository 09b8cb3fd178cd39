package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode represents how output is rendered.
type Mode int

const (
	// ModePlain is used for pipes, files, CI logs and NO_COLOR.
	ModePlain Mode = iota
	// ModeStyled is used when a human reads the terminal.
	ModeStyled
)

// EnvPlain forces plain output when set to 1.
const EnvPlain = "WINENTITY_PLAIN"

// DetectMode decides whether output written to w should be styled.
//
// Returns ModePlain if:
//   - WINENTITY_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set
//   - w is not a terminal
func DetectMode(w io.Writer) Mode {
	if os.Getenv(EnvPlain) == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}
	return ModeStyled
}
