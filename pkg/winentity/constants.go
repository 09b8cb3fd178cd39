package winentity

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Query completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitCommandFailed   = 11 // External metadata command could not run or produced nothing
	ExitAmbiguousResult = 12 // Single-entity query decoded more than one record
	ExitTruncatedOutput = 13 // Trailing record was incomplete under the strict policy
)

const (
	// DefaultShell is the executable that produces entity listings.
	DefaultShell = "powershell"

	// DefaultCommandTimeout bounds a single external invocation when the
	// caller does not configure one.
	DefaultCommandTimeout = 30 * time.Second

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 5 * time.Second

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts
	// for starting the external process.
	DefaultRetryMaxAttempts = 2

	// MaxStderrPreviewLength caps how much of the external command's stderr
	// is embedded in error messages.
	MaxStderrPreviewLength = 200
)
