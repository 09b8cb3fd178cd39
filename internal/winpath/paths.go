// Package winpath converts Windows paths between the single and doubled
// backslash forms that show up when paths are copied out of escaped
// strings, JSON or shell history.
package winpath

import "strings"

const (
	single  = `\`
	doubled = `\\`
)

// DoubleSeparators returns path with every separator written as two
// backslashes. A path that already contains a doubled separator is
// returned unchanged.
func DoubleSeparators(path string) string {
	if strings.Contains(path, doubled) || !strings.Contains(path, single) {
		return path
	}
	return strings.ReplaceAll(path, single, doubled)
}

// SingleSeparators collapses doubled separators back to one backslash.
// A path without doubled separators is returned unchanged, which keeps
// UNC prefixes such as \\server\share intact.
func SingleSeparators(path string) string {
	if !strings.Contains(path, doubled) {
		return path
	}
	if isUNC(path) {
		return doubled + strings.ReplaceAll(path[2:], doubled, single)
	}
	return strings.ReplaceAll(path, doubled, single)
}

// IsDoubled reports whether path uses doubled separators past any UNC
// prefix.
func IsDoubled(path string) bool {
	if isUNC(path) {
		return strings.Contains(path[2:], doubled)
	}
	return strings.Contains(path, doubled)
}

func isUNC(path string) bool {
	return strings.HasPrefix(path, doubled) && !strings.HasPrefix(path, `\\\\`)
}
