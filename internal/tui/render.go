package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/winentity/pkg/winentity"
)

// modeLetters maps permission tags back to their mode column position.
var modeLetters = []struct {
	tag    winentity.PermissionTag
	letter byte
}{
	{winentity.PermDirectory, 'd'},
	{winentity.PermArchive, 'a'},
	{winentity.PermReadOnly, 'r'},
	{winentity.PermHidden, 'h'},
	{winentity.PermSystem, 's'},
	{winentity.PermReparsePointOrSymlink, 'l'},
}

// ModeString rebuilds the six-column mode token from permission tags.
func ModeString(e winentity.Entity) string {
	buf := []byte("------")
	for i, m := range modeLetters {
		for _, p := range e.PermissionTags {
			if p == m.tag {
				buf[i] = m.letter
				break
			}
		}
	}
	return string(buf)
}

// Renderer writes human-readable entity output.
type Renderer struct {
	out    io.Writer
	styled bool
}

// NewRenderer renders to out, styled when mode is ModeStyled.
func NewRenderer(out io.Writer, mode Mode) *Renderer {
	return &Renderer{out: out, styled: mode == ModeStyled}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

var listColumns = []string{"Mode", "LastWriteTime", "Length", "Owner", "Name"}

// Listing writes one table of entities, headed by path when it is not empty.
func (r *Renderer) Listing(path string, entities []winentity.Entity) {
	if path != "" {
		fmt.Fprintln(r.out, r.style(TitleStyle, path))
	}
	if len(entities) == 0 {
		fmt.Fprintln(r.out, r.style(MutedStyle, "(empty)"))
		return
	}

	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, []string{ModeString(e), e.LastWriteTime, sizeText(e), e.Owner, e.Name})
	}

	widths := make([]int, len(listColumns))
	for i, c := range listColumns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	header := make([]string, len(listColumns))
	for i, c := range listColumns {
		header[i] = pad(c, widths[i], i == 2)
	}
	fmt.Fprintln(r.out, r.style(HeaderStyle, strings.TrimRight(strings.Join(header, "  "), " ")))

	for n, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i], i == 2)
		}
		cells[len(cells)-1] = r.nameCell(entities[n])
		fmt.Fprintln(r.out, strings.Join(cells, "  "))
	}
}

func (r *Renderer) nameCell(e winentity.Entity) string {
	switch {
	case e.IsReparsePointOrSymlink():
		return r.style(LinkStyle, e.Name)
	case hasPermission(e, winentity.PermHidden):
		return r.style(HiddenStyle, e.Name)
	case e.IsDirectory():
		return r.style(DirectoryStyle, e.Name)
	default:
		return e.Name
	}
}

// Detail writes every field of a single entity.
func (r *Renderer) Detail(e winentity.Entity) {
	fields := []struct{ label, value string }{
		{"Name", e.Name},
		{"Path", e.AbsolutePath},
		{"Types", joinTags(e.TypeTags)},
		{"Mode", ModeString(e)},
		{"Permissions", joinTags(e.PermissionTags)},
		{"Owner", e.Owner},
		{"Attributes", e.Attributes},
		{"Length", strconv.FormatInt(e.Size, 10)},
		{"CreationTime", e.CreationTime},
		{"LastWriteTime", e.LastWriteTime},
		{"LastAccessTime", e.LastAccessTime},
		{"ID", e.ID().String()},
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}

	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = r.style(LabelStyle, pad(f.label, width, false)) + " : " + f.value
	}
	body := strings.Join(lines, "\n")

	if r.styled {
		body = BoxStyle.Render(body)
	}
	fmt.Fprintln(r.out, body)
}

// Bool writes a predicate answer as true or false.
func (r *Renderer) Bool(v bool) {
	text := strconv.FormatBool(v)
	if v {
		fmt.Fprintln(r.out, r.style(SuccessStyle, text))
		return
	}
	fmt.Fprintln(r.out, r.style(MutedStyle, text))
}

func sizeText(e winentity.Entity) string {
	if e.IsDirectory() && e.Size == 0 {
		return ""
	}
	return strconv.FormatInt(e.Size, 10)
}

func hasPermission(e winentity.Entity, tag winentity.PermissionTag) bool {
	for _, p := range e.PermissionTags {
		if p == tag {
			return true
		}
	}
	return false
}

func joinTags[T ~string](tags []T) string {
	if len(tags) == 0 {
		return "-"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}
