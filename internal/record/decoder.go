package record

import (
	"strings"

	"github.com/vvka-141/winentity/pkg/winentity"
)

// Decoder turns assembled records into entities using a label schema.
type Decoder struct {
	Schema    *Schema
	Separator string
}

// NewDecoder returns a Decoder for schema using the package Separator.
func NewDecoder(schema *Schema) Decoder {
	return Decoder{Schema: schema, Separator: Separator}
}

// DecodeRecord builds one entity from a delimited record.
// Unknown or malformed property lines are skipped; fields whose label is
// missing keep their zero value. Tag slices are always non-nil.
func (d Decoder) DecodeRecord(record string) winentity.Entity {
	e := winentity.Entity{
		TypeTags:       []winentity.TypeTag{},
		PermissionTags: []winentity.PermissionTag{},
	}

	sep := strings.TrimSpace(d.Separator)
	if sep == "" {
		sep = strings.TrimSpace(Separator)
	}
	for _, part := range strings.Split(record, sep) {
		d.Schema.Apply(&e, part)
	}
	return e
}

// Decode returns one entity per record, in order.
func (d Decoder) Decode(records []string) []winentity.Entity {
	entities := make([]winentity.Entity, 0, len(records))
	for _, r := range records {
		entities = append(entities, d.DecodeRecord(r))
	}
	return entities
}

// Decode applies the default Decoder for DefaultSchema.
func Decode(records []string) []winentity.Entity {
	return NewDecoder(DefaultSchema).Decode(records)
}
