package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/winentity/internal/files/filesystem"
	"github.com/vvka-141/winentity/internal/record"
	"github.com/vvka-141/winentity/internal/shell"
	"github.com/vvka-141/winentity/pkg/winentity"
)

var parseFlags struct {
	json   bool
	strict bool
}

// fsProvider reads capture files. Tests replace it.
var fsProvider filesystem.FileSystemProvider = filesystem.NewOSFileSystem()

var parseCmd = &cobra.Command{
	Use:   "parse [file|dir|-]",
	Short: "Decode captured metadata command output",
	Long: `Parse decodes output that was captured from the metadata command earlier,
so listings can be inspected on any platform.

Input is read from a file, from every file under a directory, or from stdin
when no argument or "-" is given. UTF-8 and UTF-16 (with BOM) are accepted.`,
	Example: `  powershell -Command "Get-ChildItem ... | Format-List" > home.txt
  winentity parse home.txt --json
  winentity parse ./captures
  cat home.txt | winentity parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseFlags.json, "json", false, "Output entities as JSON")
	parseCmd.Flags().BoolVar(&parseFlags.strict, "strict", false, "Fail when the output ends inside a record")
}

func runParse(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if parseFlags.strict {
		settings.Trailing = record.TrailingError
	}
	parser := newParser(settings)
	logger := newLogger(cmd)

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		entities, err := decodeCapture(parser, data)
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		return writeListings(cmd, []winentity.Listing{{Path: "-", Entities: entities}}, false, parseFlags.json)
	}

	path := args[0]
	info, err := fsProvider.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		data, err := fsProvider.ReadFile(path)
		if err != nil {
			return err
		}
		entities, err := decodeCapture(parser, data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return writeListings(cmd, []winentity.Listing{{Path: path, Entities: entities}}, false, parseFlags.json)
	}

	var listings []winentity.Listing
	err = fsProvider.Walk(path, func(file string, _ filesystem.FileInfo) error {
		data, err := fsProvider.ReadFile(file)
		if err != nil {
			return err
		}
		entities, err := decodeCapture(parser, data)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		logger.Verbose("decoded %d entities from %s", len(entities), file)
		listings = append(listings, winentity.Listing{Path: file, Entities: entities})
		return nil
	})
	if err != nil {
		return err
	}
	if listings == nil {
		listings = []winentity.Listing{}
	}
	return writeListings(cmd, listings, true, parseFlags.json)
}

func decodeCapture(parser record.Parser, data []byte) ([]winentity.Entity, error) {
	text, err := shell.DecodeOutput(data)
	if err != nil {
		return nil, err
	}
	return parser.Parse(text)
}
