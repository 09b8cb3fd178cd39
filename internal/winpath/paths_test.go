package winpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleSeparators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"drive path", `C:\Users\me`, `C:\\Users\\me`},
		{"already doubled", `C:\\Users\\me`, `C:\\Users\\me`},
		{"no separators", `notes.txt`, `notes.txt`},
		{"empty", ``, ``},
		{"trailing separator", `C:\`, `C:\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DoubleSeparators(tt.in))
		})
	}
}

func TestSingleSeparators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"doubled drive path", `C:\\Users\\me`, `C:\Users\me`},
		{"already single", `C:\Users\me`, `C:\Users\me`},
		{"unc path untouched", `\\server\share\dir`, `\\server\share\dir`},
		{"doubled unc path", `\\\\server\\share`, `\\server\share`},
		{"unc with doubled tail", `\\server\\share`, `\\server\share`},
		{"no separators", `notes.txt`, `notes.txt`},
		{"empty", ``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SingleSeparators(tt.in))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, p := range []string{`C:\Users\me\Documents`, `D:\a\b\c.txt`, `C:\`} {
		assert.Equal(t, p, SingleSeparators(DoubleSeparators(p)))
	}
}

func TestIsDoubled(t *testing.T) {
	assert.True(t, IsDoubled(`C:\\Users`))
	assert.False(t, IsDoubled(`C:\Users`))
	assert.False(t, IsDoubled(`\\server\share`))
	assert.True(t, IsDoubled(`\\server\\share`))
}
