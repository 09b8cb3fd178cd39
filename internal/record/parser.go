package record

import (
	"github.com/vvka-141/winentity/pkg/winentity"
)

// Parser runs the full Segmenter -> Assembler -> Decoder pipeline.
// A Parser holds no mutable state and may be shared between goroutines.
type Parser struct {
	Segmenter Segmenter
	Assembler Assembler
	Decoder   Decoder
}

// Option configures a Parser.
type Option func(*Parser)

// WithTrailingPolicy sets what happens to an incomplete final record.
func WithTrailingPolicy(p TrailingPolicy) Option {
	return func(parser *Parser) {
		parser.Assembler.Policy = p
	}
}

// WithSchema replaces the label schema. The assembler threshold follows
// the schema's length so both stages agree on the record size.
func WithSchema(s *Schema) Option {
	return func(parser *Parser) {
		parser.Assembler.Threshold = s.PropertiesPerEntity()
		parser.Decoder.Schema = s
	}
}

// WithSegmenter replaces the header and window sizes.
func WithSegmenter(s Segmenter) Option {
	return func(parser *Parser) {
		parser.Segmenter = s
	}
}

// NewParser returns a Parser for DefaultSchema with the given options applied.
func NewParser(opts ...Option) Parser {
	p := Parser{
		Segmenter: NewSegmenter(),
		Assembler: NewAssembler(DefaultSchema),
		Decoder:   NewDecoder(DefaultSchema),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Parse decodes one invocation's captured standard output.
func (p Parser) Parse(text string) ([]winentity.Entity, error) {
	return p.ParseLines(SplitLines(text))
}

// ParseLines decodes already-split output lines.
// Under TrailingError the entities from complete records are returned
// together with the *TruncatedRecordError.
func (p Parser) ParseLines(lines []string) ([]winentity.Entity, error) {
	segmented := p.Segmenter.Segment(lines)
	records, err := p.Assembler.Assemble(segmented)
	return p.Decoder.Decode(records), err
}
