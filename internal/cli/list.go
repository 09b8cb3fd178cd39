package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/vvka-141/winentity/internal/record"
	"github.com/vvka-141/winentity/internal/shell"
	"github.com/vvka-141/winentity/pkg/winentity"
)

var listFlags struct {
	json   bool
	mine   bool
	strict bool
}

// currentUser resolves the user for --mine. Tests replace it.
var currentUser = shell.CurrentUser

var listCmd = &cobra.Command{
	Use:   "list [path...]",
	Short: "List the entities inside one or more directories",
	Long: `List runs the metadata command for each directory and prints one row per
entity. Without a path the working directory is listed. Several paths are
queried concurrently; the first failure stops the others.

An incomplete final record is dropped unless --strict is set, in which case
the command fails with exit code 13.`,
	Example: `  winentity list
  winentity list C:\Users\me --json
  winentity list C:\Users\me D:\Projects --mine`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listFlags.json, "json", false, "Output entities as JSON")
	listCmd.Flags().BoolVar(&listFlags.mine, "mine", false, "Only show entities owned by the current user")
	listCmd.Flags().BoolVar(&listFlags.strict, "strict", false, "Fail when the output ends inside a record")
}

func runList(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if listFlags.strict {
		settings.Trailing = record.TrailingError
	}

	logger := newLogger(cmd)
	inspector := newInspector(settings, logger)

	listings, err := collectListings(commandContext(cmd), inspector, args)
	if err != nil {
		return err
	}

	if listFlags.mine {
		user := currentUser()
		if user == "" {
			return errors.New("cannot determine the current user for --mine")
		}
		logger.Verbose("keeping entities owned by %q", user)
		for i := range listings {
			listings[i].Entities = ownedBy(listings[i].Entities, user)
		}
	}

	return writeListings(cmd, listings, len(args) > 1, listFlags.json)
}

func collectListings(ctx context.Context, inspector winentity.Inspector, paths []string) ([]winentity.Listing, error) {
	switch len(paths) {
	case 0:
		entities, err := inspector.ListCurrent(ctx)
		if err != nil {
			return nil, err
		}
		return []winentity.Listing{{Entities: entities}}, nil
	case 1:
		entities, err := inspector.List(ctx, paths[0])
		if err != nil {
			return nil, err
		}
		return []winentity.Listing{{Path: paths[0], Entities: entities}}, nil
	default:
		return inspector.ListAll(ctx, paths)
	}
}

func ownedBy(entities []winentity.Entity, user string) []winentity.Entity {
	kept := make([]winentity.Entity, 0, len(entities))
	for _, e := range entities {
		if shell.OwnerMatches(e.Owner, user) {
			kept = append(kept, e)
		}
	}
	return kept
}
