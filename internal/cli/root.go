package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "winentity",
	Short: "Query Windows filesystem entity metadata",
	Long: `winentity runs the Windows metadata command for a path and decodes its
property listing into structured entities: type tags, permission tags,
owner, timestamps, size and absolute path.

Live queries (list, info, is) need PowerShell. The parse command decodes
previously captured output on any platform.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Metadata command failed or is unavailable
  12 - Single-entity query was ambiguous
  13 - Output ended inside a record (strict mode)`,
	SilenceUsage: true,
}

// globalFlags holds the persistent flag values shared by every command.
var globalFlags struct {
	verbose    bool
	configPath string
	shell      string
	timeout    time.Duration
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	pf.StringVar(&globalFlags.configPath, "config", "", "Path to winentity.yaml (default: ./winentity.yaml when present)")
	pf.StringVar(&globalFlags.shell, "shell", "", "Shell executable that runs the metadata command (default: powershell)")
	pf.DurationVar(&globalFlags.timeout, "timeout", 0, "Timeout for one metadata command (default: 30s)")
}

// commandContext returns the command's context, or Background when the
// command is invoked outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
