package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/winentity/pkg/winentity"
)

// Property labels emitted by the metadata command.
const (
	LabelMode           = "Mode"
	LabelOwner          = "Owner"
	LabelLastWriteTime  = "LastWriteTime"
	LabelName           = "Name"
	LabelCreationTime   = "CreationTime"
	LabelAttributes     = "Attributes"
	LabelLastAccessTime = "LastAccessTime"
	LabelLength         = "Length"
	LabelFullName       = "FullName"
)

// Field binds one property label to the setter that stores its value.
type Field struct {
	Label string
	Set   func(e *winentity.Entity, value string)
}

// Schema is a validated, ordered set of labeled fields.
// Its length is the number of property lines that make up one record.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema validates fields and builds a lookup index.
// Labels must be non-empty, unique and free of colons; setters must be non-nil.
func NewSchema(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, errors.New("schema requires at least one field")
	}

	s := &Schema{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		label := strings.TrimSpace(f.Label)
		switch {
		case label == "":
			return nil, fmt.Errorf("field %d: empty label", i)
		case strings.Contains(label, ":"):
			return nil, fmt.Errorf("field %q: label must not contain ':'", label)
		case f.Set == nil:
			return nil, fmt.Errorf("field %q: nil setter", label)
		}
		if _, dup := s.index[label]; dup {
			return nil, fmt.Errorf("field %q: duplicate label", label)
		}
		s.fields[i] = Field{Label: label, Set: f.Set}
		s.index[label] = i
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid field list.
// Intended for package-level schema declarations.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// PropertiesPerEntity returns the number of property lines in one record.
func (s *Schema) PropertiesPerEntity() int {
	return len(s.fields)
}

// Labels returns the schema's labels in declaration order.
func (s *Schema) Labels() []string {
	labels := make([]string, len(s.fields))
	for i, f := range s.fields {
		labels[i] = f.Label
	}
	return labels
}

// Apply stores the value of a property line on e.
// It reports false for lines without a recognized label; those are ignored.
func (s *Schema) Apply(e *winentity.Entity, line string) bool {
	label, value, ok := SplitProperty(line)
	if !ok {
		return false
	}
	i, known := s.index[label]
	if !known {
		return false
	}
	s.fields[i].Set(e, value)
	return true
}

// SplitProperty splits "Label    : value" at the first colon.
// Label and value are trimmed; values may themselves contain colons.
func SplitProperty(line string) (label, value string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", "", false
	}
	label = strings.TrimSpace(line[:idx])
	if label == "" {
		return "", "", false
	}
	return label, strings.TrimSpace(line[idx+1:]), true
}

// parseLength never fails: anything that is not a base-10 integer is 0.
func parseLength(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// DefaultSchema describes the nine properties selected from the metadata command.
var DefaultSchema = MustSchema(
	Field{LabelMode, func(e *winentity.Entity, v string) {
		e.TypeTags, e.PermissionTags = DecodeMode(v)
	}},
	Field{LabelOwner, func(e *winentity.Entity, v string) { e.Owner = v }},
	Field{LabelLastWriteTime, func(e *winentity.Entity, v string) { e.LastWriteTime = v }},
	Field{LabelName, func(e *winentity.Entity, v string) { e.Name = v }},
	Field{LabelCreationTime, func(e *winentity.Entity, v string) { e.CreationTime = v }},
	Field{LabelAttributes, func(e *winentity.Entity, v string) { e.Attributes = v }},
	Field{LabelLastAccessTime, func(e *winentity.Entity, v string) { e.LastAccessTime = v }},
	Field{LabelLength, func(e *winentity.Entity, v string) { e.Size = parseLength(v) }},
	Field{LabelFullName, func(e *winentity.Entity, v string) { e.AbsolutePath = v }},
)
