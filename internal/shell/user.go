package shell

import (
	"os"
	"os/user"
	"strings"
)

// CurrentUser returns the name of the user running the process without
// any domain or machine prefix, or "" when it cannot be determined.
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return stripDomain(u.Username)
	}
	for _, key := range []string{"USERNAME", "USER"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return stripDomain(v)
		}
	}
	return ""
}

// OwnerMatches reports whether an owner string such as DESKTOP-42\me
// belongs to name. Comparison ignores case and the domain prefix.
func OwnerMatches(owner, name string) bool {
	if name == "" {
		return false
	}
	return strings.EqualFold(stripDomain(strings.TrimSpace(owner)), stripDomain(name))
}

func stripDomain(name string) string {
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		return name[i+1:]
	}
	return name
}
