package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/winentity/internal/record"
	"github.com/vvka-141/winentity/internal/retry"
	"github.com/vvka-141/winentity/internal/winpath"
	"github.com/vvka-141/winentity/pkg/winentity"
)

// DefaultListConcurrency bounds how many listing commands ListAll runs at once.
const DefaultListConcurrency = 4

var errEmptyPath = errors.New("path must not be empty")

// InspectorService implements winentity.Inspector.
// It holds no per-query state and is safe for concurrent use.
type InspectorService struct {
	runner      winentity.CommandRunner
	logger      winentity.Logger
	parser      record.Parser
	executor    *retry.Executor
	concurrency int
	workDir     func() (string, error)
}

var _ winentity.Inspector = (*InspectorService)(nil)

// NewInspectorService wires an inspector. Panics on nil dependencies.
func NewInspectorService(
	runner winentity.CommandRunner,
	logger winentity.Logger,
	parser record.Parser,
	executor *retry.Executor,
) *InspectorService {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &InspectorService{
		runner:      runner,
		logger:      logger,
		parser:      parser,
		executor:    executor,
		concurrency: DefaultListConcurrency,
		workDir:     os.Getwd,
	}
}

// WithConcurrency returns a copy that runs up to n listings at once.
// Values below one are treated as one.
func (s *InspectorService) WithConcurrency(n int) *InspectorService {
	clone := *s
	clone.concurrency = max(n, 1)
	return &clone
}

func (s *InspectorService) List(ctx context.Context, path string) ([]winentity.Entity, error) {
	if strings.TrimSpace(path) == "" {
		return s.ListCurrent(ctx)
	}
	return s.query(ctx, winentity.QueryChildren, path)
}

func (s *InspectorService) ListCurrent(ctx context.Context) ([]winentity.Entity, error) {
	dir, err := s.workDir()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	return s.query(ctx, winentity.QueryChildren, dir)
}

// ListAll stops at the first failing path and cancels the others.
func (s *InspectorService) ListAll(ctx context.Context, paths []string) ([]winentity.Listing, error) {
	listings := make([]winentity.Listing, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, path := range paths {
		i, path := i, path // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			entities, err := s.List(gctx, path)
			if err != nil {
				return err
			}
			listings[i] = winentity.Listing{Path: path, Entities: entities}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listings, nil
}

// Entity applies the zero/one/many rule to the item query. Many records
// are reported as ErrMultipleMatches when they name different paths and
// as ErrRecordMisaligned otherwise.
func (s *InspectorService) Entity(ctx context.Context, path string) (winentity.Entity, error) {
	if strings.TrimSpace(path) == "" {
		return winentity.Entity{}, errEmptyPath
	}

	entities, err := s.query(ctx, winentity.QueryItem, path)
	if err != nil {
		return winentity.Entity{}, err
	}

	switch len(entities) {
	case 0:
		s.logger.Verbose("no records for %q, returning default entity", path)
		return winentity.NewDefaultEntity(path), nil
	case 1:
		return entities[0], nil
	default:
		return winentity.Entity{}, classifyAmbiguity(path, entities)
	}
}

// Is uses matched-subset semantics: every requested tag must be present,
// other tags on the entity are allowed.
func (s *InspectorService) Is(ctx context.Context, path string, tags ...winentity.TypeTag) (bool, error) {
	entity, err := s.Entity(ctx, path)
	if err != nil {
		return false, err
	}
	return entity.HasTypes(tags...), nil
}

func (s *InspectorService) query(ctx context.Context, kind winentity.QueryKind, path string) ([]winentity.Entity, error) {
	path = winpath.SingleSeparators(path)
	s.logger.Verbose("querying %s of %q", kind, path)

	executor := s.executor.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		s.logger.Verbose("retrying %s of %q in %v (retry %d): %v", kind, path, delay, attempt+1, err)
	})
	out, err := retry.Do(ctx, executor, func(ctx context.Context) (winentity.CommandOutput, error) {
		return s.runner.Run(ctx, kind, path)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s of %q: %w", winentity.ErrCommandFailed, kind, path, err)
	}

	if out.ExitCode != 0 {
		if strings.TrimSpace(out.Stdout) == "" {
			return nil, fmt.Errorf("%w: %s of %q exited with status %d: %s",
				winentity.ErrCommandFailed, kind, path, out.ExitCode, stderrPreview(out.Stderr))
		}
		s.logger.Verbose("%s of %q exited with status %d, decoding partial output: %s",
			kind, path, out.ExitCode, stderrPreview(out.Stderr))
	} else if strings.TrimSpace(out.Stderr) != "" {
		s.logger.Verbose("%s of %q wrote to stderr: %s", kind, path, stderrPreview(out.Stderr))
	}

	entities, err := s.parser.Parse(out.Stdout)
	if err != nil {
		return entities, fmt.Errorf("%s of %q: %w", kind, path, err)
	}
	s.logger.Verbose("decoded %d entities from %s of %q", len(entities), kind, path)
	return entities, nil
}

func classifyAmbiguity(path string, entities []winentity.Entity) error {
	distinct := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		if p := strings.ToLower(strings.TrimSpace(e.AbsolutePath)); p != "" {
			distinct[p] = struct{}{}
		}
	}
	if len(distinct) > 1 {
		return fmt.Errorf("%w: %d entities for %q", winentity.ErrMultipleMatches, len(distinct), path)
	}
	return fmt.Errorf("%w: %d records for %q", winentity.ErrRecordMisaligned, len(entities), path)
}

func stderrPreview(stderr string) string {
	s := strings.Join(strings.Fields(stderr), " ")
	if s == "" {
		return "(no stderr)"
	}
	if len(s) > winentity.MaxStderrPreviewLength {
		return s[:winentity.MaxStderrPreviewLength] + "..."
	}
	return s
}
