// Package retry re-runs operations that fail for transient reasons,
// waiting between attempts with exponential backoff.
//
// The metadata command is an external process. Starting it can fail
// briefly when the system is short on process slots or file handles, or
// while the executable is being replaced. Those failures are worth one
// or two more attempts; a missing executable or a cancelled context is not.
//
//	executor := retry.NewExecutor(
//	    retry.NewExecErrorClassifier(),
//	    retry.NewExponentialBackoff(2, retry.WithInitialDelay(50*time.Millisecond)),
//	)
//	out, err := retry.Do(ctx, executor, func(ctx context.Context) (winentity.CommandOutput, error) {
//	    return runner.Run(ctx, kind, path)
//	})
//
// Executor values are safe for concurrent use. WithOnRetry returns a copy.
package retry
