package winentity

import "context"

// QueryKind selects which listing the external command produces.
type QueryKind int

const (
	// QueryChildren lists the entities inside a directory.
	QueryChildren QueryKind = iota
	// QueryItem describes the entity at the path itself.
	QueryItem
)

func (k QueryKind) String() string {
	switch k {
	case QueryChildren:
		return "children"
	case QueryItem:
		return "item"
	default:
		return "unknown"
	}
}

// CommandOutput is the captured result of one external invocation.
// A non-zero ExitCode is reported here rather than as an error.
type CommandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs the platform metadata command for a path.
// Implementations return an error only when the process could not be run.
type CommandRunner interface {
	Run(ctx context.Context, kind QueryKind, path string) (CommandOutput, error)
}
