package shell

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeOutput converts captured process output to a string.
// A UTF-16 byte order mark selects UTF-16 decoding; otherwise the bytes
// are read as UTF-8 with invalid sequences replaced. Any BOM is removed.
func DecodeOutput(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, b)
	if err != nil {
		return "", fmt.Errorf("decode command output: %w", err)
	}
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}
