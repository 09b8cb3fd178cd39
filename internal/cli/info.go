package cli

import (
	"github.com/spf13/cobra"
)

var infoFlags struct {
	json bool
}

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Describe a single file or directory",
	Long: `Info runs the metadata command for the entity at path itself.

When the command prints nothing for the path, a default entity carrying only
the path is shown. When it decodes more than one record the result is
ambiguous and the command fails with exit code 12.`,
	Example: `  winentity info C:\Users\me\OneDrive
  winentity info C:\\Users\\me\\notes.txt --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoFlags.json, "json", false, "Output the entity as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	entity, err := newInspector(settings, newLogger(cmd)).Entity(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	if infoFlags.json {
		return writeJSON(cmd.OutOrStdout(), entity)
	}
	newRenderer(cmd).Detail(entity)
	return nil
}
