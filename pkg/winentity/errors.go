package winentity

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	entity, err := inspector.Entity(ctx, path)
//	if errors.Is(err, winentity.ErrAmbiguousResult) {
//	    // More than one record decoded for a single-entity query
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCommandFailed indicates the external metadata command could not be
	// run or produced no usable output.
	ErrCommandFailed = errors.New("metadata command failed")

	// ErrAmbiguousResult indicates a single-entity query decoded more than one record.
	// ErrMultipleMatches and ErrRecordMisaligned both wrap it.
	ErrAmbiguousResult = errors.New("ambiguous result")

	// ErrMultipleMatches indicates the query matched several distinct filesystem objects.
	ErrMultipleMatches error = &ambiguityError{msg: "query matched multiple entities"}

	// ErrRecordMisaligned indicates one entity's output was split into several
	// records, e.g. because a property wrapped onto an extra line.
	ErrRecordMisaligned error = &ambiguityError{msg: "entity output split into multiple records"}

	// ErrTruncatedOutput indicates the output ended in the middle of a record
	// and the strict trailing policy is in effect.
	ErrTruncatedOutput = errors.New("truncated record output")

	// ErrUnsupportedPlatform indicates the live query commands were invoked on
	// a platform without the metadata command.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// ambiguityError is a sentinel that also matches ErrAmbiguousResult.
type ambiguityError struct {
	msg string
}

func (e *ambiguityError) Error() string { return e.msg }

func (e *ambiguityError) Unwrap() error { return ErrAmbiguousResult }

// usageErrorPatterns are message prefixes produced by cobra for bad invocations.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrCommandFailed), errors.Is(err, ErrUnsupportedPlatform):
		return ExitCommandFailed
	case errors.Is(err, ErrAmbiguousResult):
		return ExitAmbiguousResult
	case errors.Is(err, ErrTruncatedOutput):
		return ExitTruncatedOutput
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.HasPrefix(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
