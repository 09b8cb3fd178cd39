package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/winentity/pkg/winentity"
)

var isFlags struct {
	exact bool
}

// typeNames are offered for shell completion of the first argument.
var typeNames = []string{
	string(winentity.TypeDirectory),
	string(winentity.TypeArchive),
	string(winentity.TypeReparsePointOrSymlink),
}

var isCmd = &cobra.Command{
	Use:   "is <type>[,<type>...] <path>",
	Short: "Check whether an entity carries the given type tags",
	Long: `Is prints true when the entity at path carries every listed type tag.
Other tags on the entity do not matter unless --exact is set, which requires
the entity's type tags to equal the listed set.

Types: directory (dir), archive, reparse-point-or-symlink (symlink, reparse).
The answer is printed either way; the exit code is 0 unless the query fails.`,
	Example: `  winentity is directory C:\Users\me\OneDrive
  winentity is dir,symlink C:\Users\me\OneDrive
  winentity is archive C:\Users\me\notes.txt --exact`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeTypeNames,
	RunE:              runIs,
}

func init() {
	rootCmd.AddCommand(isCmd)
	isCmd.Flags().BoolVar(&isFlags.exact, "exact", false, "Require the type tags to match exactly")
}

func runIs(cmd *cobra.Command, args []string) error {
	tags, err := parseTypeList(args[0])
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	inspector := newInspector(settings, newLogger(cmd))
	ctx := commandContext(cmd)

	var result bool
	if isFlags.exact {
		entity, err := inspector.Entity(ctx, args[1])
		if err != nil {
			return err
		}
		result = entity.HasExactTypes(tags...)
	} else {
		result, err = inspector.Is(ctx, args[1], tags...)
		if err != nil {
			return err
		}
	}

	newRenderer(cmd).Bool(result)
	return nil
}

// parseTypeList splits a comma-separated type list.
func parseTypeList(s string) ([]winentity.TypeTag, error) {
	var tags []winentity.TypeTag
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		tag, ok := winentity.ParseTypeTag(part)
		if !ok {
			return nil, fmt.Errorf("invalid argument %q: unknown type (want one of %s)", part, strings.Join(typeNames, ", "))
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("invalid argument %q: no types given", s)
	}
	return tags, nil
}

// completeTypeNames provides shell completion for the type list argument.
func completeTypeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	prefix := ""
	current := toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, current = toComplete[:i+1], toComplete[i+1:]
	}

	var matches []string
	for _, name := range typeNames {
		if strings.HasPrefix(name, current) {
			matches = append(matches, prefix+name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
