package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/winentity/internal/record"
	"github.com/vvka-141/winentity/pkg/winentity"
)

const home = `C:\Users\me`

func TestList_CurrentDirectory(t *testing.T) {
	fake := &fakeInspector{current: []winentity.Entity{testEntity("Desktop", `PC\me`, winentity.TypeDirectory)}}
	useInspector(t, fake)

	out, _, err := executeCommand(t, nil, "list")

	require.NoError(t, err)
	assert.Equal(t, []string{"list-current"}, fake.calls)
	assert.Contains(t, out, "Mode")
	assert.Contains(t, out, "Desktop")
	assert.Equal(t, winentity.DefaultShell, fake.settings.Shell)
	assert.Equal(t, record.TrailingDrop, fake.settings.Trailing)
}

func TestList_SinglePathJSON(t *testing.T) {
	fake := &fakeInspector{lists: map[string][]winentity.Entity{
		home: {testEntity("a.txt", `PC\me`, winentity.TypeArchive), testEntity("Docs", `PC\me`, winentity.TypeDirectory)},
	}}
	useInspector(t, fake)

	out, _, err := executeCommand(t, nil, "list", home, "--json")

	require.NoError(t, err)
	var entities []winentity.Entity
	require.NoError(t, json.Unmarshal([]byte(out), &entities))
	require.Len(t, entities, 2)
	assert.Equal(t, "a.txt", entities[0].Name)
	assert.True(t, entities[1].IsDirectory())
}

func TestList_EmptyDirectoryJSONIsArray(t *testing.T) {
	useInspector(t, &fakeInspector{})

	out, _, err := executeCommand(t, nil, "list", home, "--json")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestList_MultiplePathsJSON(t *testing.T) {
	fake := &fakeInspector{lists: map[string][]winentity.Entity{
		`C:\a`: {testEntity("one", "x")},
		`C:\b`: {testEntity("two", "x")},
	}}
	useInspector(t, fake)

	out, _, err := executeCommand(t, nil, "list", `C:\a`, `C:\b`, "--json")

	require.NoError(t, err)
	var listings []winentity.Listing
	require.NoError(t, json.Unmarshal([]byte(out), &listings))
	require.Len(t, listings, 2)
	assert.Equal(t, `C:\b`, listings[1].Path)
	assert.Equal(t, "two", listings[1].Entities[0].Name)
}

func TestList_MultiplePathsPlainHasHeadings(t *testing.T) {
	fake := &fakeInspector{lists: map[string][]winentity.Entity{
		`C:\a`: {testEntity("one", "x")},
		`C:\b`: nil,
	}}
	useInspector(t, fake)

	out, _, err := executeCommand(t, nil, "list", `C:\a`, `C:\b`)

	require.NoError(t, err)
	assert.Contains(t, out, "C:\\a\n")
	assert.Contains(t, out, "C:\\b\n(empty)\n")
}

func TestList_Mine(t *testing.T) {
	prev := currentUser
	currentUser = func() string { return "me" }
	t.Cleanup(func() { currentUser = prev })

	fake := &fakeInspector{lists: map[string][]winentity.Entity{
		home: {
			testEntity("mine.txt", `DESKTOP-42\me`),
			testEntity("system.dll", `NT AUTHORITY\SYSTEM`),
			testEntity("also-mine", `DESKTOP-42\ME`),
		},
	}}
	useInspector(t, fake)

	out, _, err := executeCommand(t, nil, "list", home, "--mine", "--json")

	require.NoError(t, err)
	var entities []winentity.Entity
	require.NoError(t, json.Unmarshal([]byte(out), &entities))
	require.Len(t, entities, 2)
	assert.Equal(t, "mine.txt", entities[0].Name)
	assert.Equal(t, "also-mine", entities[1].Name)
}

func TestList_MineWithoutUser(t *testing.T) {
	prev := currentUser
	currentUser = func() string { return "" }
	t.Cleanup(func() { currentUser = prev })
	useInspector(t, &fakeInspector{})

	_, _, err := executeCommand(t, nil, "list", home, "--mine")

	assert.ErrorContains(t, err, "current user")
}

func TestList_FlagsOverrideSettings(t *testing.T) {
	fake := &fakeInspector{}
	useInspector(t, fake)

	_, _, err := executeCommand(t, nil, "list", home, "--strict", "--shell", "pwsh", "--timeout", "5s")

	require.NoError(t, err)
	assert.Equal(t, record.TrailingError, fake.settings.Trailing)
	assert.Equal(t, "pwsh", fake.settings.Shell)
	assert.Equal(t, 5*time.Second, fake.settings.Timeout)
}

func TestList_ConfigFlag(t *testing.T) {
	fake := &fakeInspector{}
	useInspector(t, fake)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "winentity.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("shell:\n  executable: pwsh\n  timeout: 2m\nrecords:\n  trailing: error\n"), 0644))

	_, _, err := executeCommand(t, nil, "list", home, "--config", cfg)

	require.NoError(t, err)
	assert.Equal(t, "pwsh", fake.settings.Shell)
	assert.Equal(t, 2*time.Minute, fake.settings.Timeout)
	assert.Equal(t, record.TrailingError, fake.settings.Trailing)
}

func TestList_ConfigErrors(t *testing.T) {
	useInspector(t, &fakeInspector{})
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("records:\n  trailing: sometimes\n"), 0644))

	tests := []struct {
		name string
		args []string
	}{
		{"missing explicit config", []string{"list", "--config", filepath.Join(dir, "nope.yaml")}},
		{"invalid trailing policy", []string{"list", "--config", bad}},
		{"negative timeout", []string{"list", "--timeout", "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, nil, tt.args...)

			assert.ErrorIs(t, err, winentity.ErrInvalidConfig)
			assert.Equal(t, winentity.ExitConfigError, winentity.ExitCodeForError(err))
		})
	}
}

func TestList_CommandFailure(t *testing.T) {
	useInspector(t, &fakeInspector{err: fmt.Errorf("%w: children of %q exited with status 1", winentity.ErrCommandFailed, home)})

	_, _, err := executeCommand(t, nil, "list", home)

	assert.Equal(t, winentity.ExitCommandFailed, winentity.ExitCodeForError(err))
}

func TestInfo_Plain(t *testing.T) {
	path := home + `\OneDrive`
	useInspector(t, &fakeInspector{entities: map[string]winentity.Entity{
		path: testEntity("OneDrive", `PC\me`, winentity.TypeDirectory, winentity.TypeReparsePointOrSymlink),
	}})

	out, _, err := executeCommand(t, nil, "info", path)

	require.NoError(t, err)
	assert.Contains(t, out, "OneDrive")
	assert.Contains(t, out, "directory, reparse-point-or-symlink")
}

func TestInfo_DefaultEntityJSON(t *testing.T) {
	useInspector(t, &fakeInspector{})

	out, _, err := executeCommand(t, nil, "info", `C:\nothing`, "--json")

	require.NoError(t, err)
	var e winentity.Entity
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, winentity.NewDefaultEntity(`C:\nothing`), e)
}

func TestInfo_Ambiguous(t *testing.T) {
	useInspector(t, &fakeInspector{err: fmt.Errorf("%w: 2 entities", winentity.ErrMultipleMatches)})

	_, _, err := executeCommand(t, nil, "info", home)

	assert.Equal(t, winentity.ExitAmbiguousResult, winentity.ExitCodeForError(err))
}

func TestInfo_RequiresOnePath(t *testing.T) {
	useInspector(t, &fakeInspector{})

	_, _, err := executeCommand(t, nil, "info")

	assert.Equal(t, winentity.ExitUsageError, winentity.ExitCodeForError(err))
}

func TestIs(t *testing.T) {
	path := home + `\OneDrive`
	onedrive := testEntity("OneDrive", `PC\me`, winentity.TypeDirectory, winentity.TypeReparsePointOrSymlink)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single type", []string{"is", "directory", path}, "true"},
		{"short names", []string{"is", "dir,symlink", path}, "true"},
		{"missing type", []string{"is", "archive", path}, "false"},
		{"exact mismatch", []string{"is", "dir", path, "--exact"}, "false"},
		{"exact match", []string{"is", "symlink,dir", path, "--exact"}, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useInspector(t, &fakeInspector{entities: map[string]winentity.Entity{path: onedrive}})

			out, _, err := executeCommand(t, nil, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestIs_UsageErrors(t *testing.T) {
	useInspector(t, &fakeInspector{})

	for _, args := range [][]string{
		{"is", "folder", home},
		{"is", ",", home},
		{"is", "dir"},
	} {
		_, _, err := executeCommand(t, nil, args...)
		assert.Equal(t, winentity.ExitUsageError, winentity.ExitCodeForError(err), "args %v: %v", args, err)
	}
}

func TestParseTypeList(t *testing.T) {
	tags, err := parseTypeList("dir, archive,,l")

	require.NoError(t, err)
	assert.Equal(t, []winentity.TypeTag{winentity.TypeDirectory, winentity.TypeArchive, winentity.TypeReparsePointOrSymlink}, tags)
}

func TestCompleteTypeNames(t *testing.T) {
	matches, _ := completeTypeNames(isCmd, nil, "dir,a")
	assert.Equal(t, []string{"dir,archive"}, matches)

	matches, _ = completeTypeNames(isCmd, nil, "")
	assert.Len(t, matches, 3)

	matches, _ = completeTypeNames(isCmd, []string{"dir"}, "")
	assert.Nil(t, matches)
}

func TestVersion(t *testing.T) {
	out, _, err := executeCommand(t, nil, "version")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "winentity "))
}

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	prev := version
	defer func() { version = prev }()

	version = "1.2.3"
	v, _, _ := resolveVersionInfo()
	assert.Equal(t, "1.2.3", v)
}
