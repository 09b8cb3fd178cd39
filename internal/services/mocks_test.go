package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/winentity/pkg/winentity"
)

type runnerCall struct {
	kind winentity.QueryKind
	path string
}

type runnerReply struct {
	out winentity.CommandOutput
	err error
}

// mockRunner answers from a table keyed by kind and path. A key with
// several replies yields them in order, repeating the last.
type mockRunner struct {
	mu      sync.Mutex
	replies map[runnerCall][]runnerReply
	calls   []runnerCall
}

func newMockRunner() *mockRunner {
	return &mockRunner{replies: make(map[runnerCall][]runnerReply)}
}

func (m *mockRunner) on(kind winentity.QueryKind, path string, out winentity.CommandOutput, err error) *mockRunner {
	key := runnerCall{kind, path}
	m.replies[key] = append(m.replies[key], runnerReply{out, err})
	return m
}

func (m *mockRunner) Run(ctx context.Context, kind winentity.QueryKind, path string) (winentity.CommandOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := runnerCall{kind, path}
	m.calls = append(m.calls, key)

	if err := ctx.Err(); err != nil {
		return winentity.CommandOutput{}, err
	}
	replies, ok := m.replies[key]
	if !ok {
		return winentity.CommandOutput{}, fmt.Errorf("unexpected %s query of %q", kind, path)
	}
	reply := replies[0]
	if len(replies) > 1 {
		m.replies[key] = replies[1:]
	}
	return reply.out, reply.err
}

func (m *mockRunner) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// recordingLogger keeps every message for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	verbose []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(string, ...interface{}) {}

func (l *recordingLogger) Error(string, ...interface{}) {}

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, msg := range l.verbose {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

// block renders one entity the way the listing command prints it.
func block(mode, dir, name, length string) []string {
	return []string{
		"Mode           : " + mode,
		`Owner          : DESKTOP-42\me`,
		"LastWriteTime  : 1/2/2024 10:11:12 AM",
		"Name           : " + name,
		"CreationTime   : 1/1/2024 9:00:00 AM",
		"Attributes     : Archive",
		"LastAccessTime : 1/3/2024 8:00:00 AM",
		"Length         : " + length,
		"FullName       : " + dir + `\` + name,
	}
}

// stdout joins blocks with blank lines behind the two header lines.
func stdout(blocks ...[]string) string {
	lines := []string{"", ""}
	for _, b := range blocks {
		lines = append(lines, b...)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

func ok(text string) winentity.CommandOutput {
	return winentity.CommandOutput{Stdout: text}
}
