package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/vvka-141/winentity/internal/config"
	"github.com/vvka-141/winentity/internal/files/filesystem"
	"github.com/vvka-141/winentity/pkg/winentity"
)

// fakeInspector answers from fixed maps and records the settings it was
// built with.
type fakeInspector struct {
	mu       sync.Mutex
	settings config.Settings
	current  []winentity.Entity
	lists    map[string][]winentity.Entity
	entities map[string]winentity.Entity
	err      error
	calls    []string
}

func (f *fakeInspector) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeInspector) List(_ context.Context, path string) ([]winentity.Entity, error) {
	f.record("list " + path)
	if f.err != nil {
		return nil, f.err
	}
	return f.lists[path], nil
}

func (f *fakeInspector) ListCurrent(_ context.Context) ([]winentity.Entity, error) {
	f.record("list-current")
	if f.err != nil {
		return nil, f.err
	}
	return f.current, nil
}

func (f *fakeInspector) ListAll(ctx context.Context, paths []string) ([]winentity.Listing, error) {
	listings := make([]winentity.Listing, 0, len(paths))
	for _, p := range paths {
		entities, err := f.List(ctx, p)
		if err != nil {
			return nil, err
		}
		listings = append(listings, winentity.Listing{Path: p, Entities: entities})
	}
	return listings, nil
}

func (f *fakeInspector) Entity(_ context.Context, path string) (winentity.Entity, error) {
	f.record("entity " + path)
	if f.err != nil {
		return winentity.Entity{}, f.err
	}
	if e, ok := f.entities[path]; ok {
		return e, nil
	}
	return winentity.NewDefaultEntity(path), nil
}

func (f *fakeInspector) Is(ctx context.Context, path string, tags ...winentity.TypeTag) (bool, error) {
	e, err := f.Entity(ctx, path)
	if err != nil {
		return false, err
	}
	return e.HasTypes(tags...), nil
}

// useInspector installs fake as the inspector for the duration of the test.
func useInspector(t *testing.T, fake *fakeInspector) {
	t.Helper()
	prev := newInspector
	newInspector = func(s config.Settings, _ winentity.Logger) winentity.Inspector {
		fake.settings = s
		return fake
	}
	t.Cleanup(func() { newInspector = prev })
}

func useFileSystem(t *testing.T, provider filesystem.FileSystemProvider) {
	t.Helper()
	prev := fsProvider
	fsProvider = provider
	t.Cleanup(func() { fsProvider = prev })
}

func resetFlags() {
	globalFlags.verbose = false
	globalFlags.configPath = ""
	globalFlags.shell = ""
	globalFlags.timeout = 0
	listFlags.json, listFlags.mine, listFlags.strict = false, false, false
	infoFlags.json = false
	isFlags.exact = false
	parseFlags.json, parseFlags.strict = false, false
}

// executeCommand runs the root command with args and captured streams.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{config.EnvShell, config.EnvTimeout, config.EnvTrailing, config.EnvRetryAttempt} {
		t.Setenv(key, "")
	}
	resetFlags()

	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	_, err := rootCmd.ExecuteC()
	return stdout.String(), stderr.String(), err
}

func testEntity(name, owner string, types ...winentity.TypeTag) winentity.Entity {
	perms := []winentity.PermissionTag{}
	for _, tt := range types {
		switch tt {
		case winentity.TypeDirectory:
			perms = append(perms, winentity.PermDirectory)
		case winentity.TypeArchive:
			perms = append(perms, winentity.PermArchive)
		case winentity.TypeReparsePointOrSymlink:
			perms = append(perms, winentity.PermReparsePointOrSymlink)
		}
	}
	return winentity.Entity{
		TypeTags:       append([]winentity.TypeTag{}, types...),
		PermissionTags: perms,
		Owner:          owner,
		Name:           name,
		AbsolutePath:   `C:\Users\me\` + name,
	}
}

// capture renders blocks the way the metadata command prints them.
func capture(blocks ...[]string) string {
	lines := []string{"", ""}
	for _, b := range blocks {
		lines = append(lines, b...)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

func captureBlock(mode, name string) []string {
	return []string{
		"Mode           : " + mode,
		`Owner          : DESKTOP-42\me`,
		"LastWriteTime  : 1/2/2024 10:11:12 AM",
		"Name           : " + name,
		"CreationTime   : 1/1/2024 9:00:00 AM",
		"Attributes     : Archive",
		"LastAccessTime : 1/3/2024 8:00:00 AM",
		"Length         : 42",
		`FullName       : C:\Users\me\` + name,
	}
}
