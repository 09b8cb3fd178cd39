package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/winentity/internal/tui"
	"github.com/vvka-141/winentity/pkg/winentity"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRenderer(cmd *cobra.Command) *tui.Renderer {
	out := cmd.OutOrStdout()
	return tui.NewRenderer(out, tui.DetectMode(out))
}

// writeListings prints listings as JSON or tables. A single listing is
// printed as a bare entity array; several keep their paths.
func writeListings(cmd *cobra.Command, listings []winentity.Listing, multi, asJSON bool) error {
	for i := range listings {
		if listings[i].Entities == nil {
			listings[i].Entities = []winentity.Entity{}
		}
	}

	if asJSON {
		if !multi && len(listings) == 1 {
			return writeJSON(cmd.OutOrStdout(), listings[0].Entities)
		}
		return writeJSON(cmd.OutOrStdout(), listings)
	}

	r := newRenderer(cmd)
	for i, l := range listings {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		path := ""
		if multi {
			path = l.Path
		}
		r.Listing(path, l.Entities)
	}
	return nil
}
