package record

import (
	"fmt"
	"strings"

	"github.com/vvka-141/winentity/pkg/winentity"
)

// Separator joins the property lines of one record. It is chosen so that it
// does not occur in property values.
const Separator = " &*& "

// TrailingPolicy decides what happens to an incomplete final group.
type TrailingPolicy int

const (
	// TrailingDrop silently discards a final group with fewer lines than the threshold.
	TrailingDrop TrailingPolicy = iota
	// TrailingError reports a final incomplete group as a *TruncatedRecordError.
	TrailingError
)

func (p TrailingPolicy) String() string {
	switch p {
	case TrailingDrop:
		return "drop"
	case TrailingError:
		return "error"
	default:
		return fmt.Sprintf("TrailingPolicy(%d)", int(p))
	}
}

// ParseTrailingPolicy accepts "drop" or "error" (case-insensitive).
// An empty string selects TrailingDrop.
func ParseTrailingPolicy(s string) (TrailingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return TrailingDrop, nil
	case "error", "strict":
		return TrailingError, nil
	}
	return TrailingDrop, fmt.Errorf("unknown trailing policy %q (want drop or error): %w", s, winentity.ErrInvalidConfig)
}

// TruncatedRecordError carries the incomplete final group.
type TruncatedRecordError struct {
	Lines     []string
	Threshold int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("trailing record has %d of %d properties", len(e.Lines), e.Threshold)
}

func (e *TruncatedRecordError) Unwrap() error {
	return winentity.ErrTruncatedOutput
}

// Assembler collapses property lines into one delimited string per entity.
type Assembler struct {
	Threshold int
	Policy    TrailingPolicy
	Separator string
}

// NewAssembler returns an Assembler that flushes every
// schema.PropertiesPerEntity() lines and drops a trailing partial group.
func NewAssembler(schema *Schema) Assembler {
	return Assembler{
		Threshold: schema.PropertiesPerEntity(),
		Policy:    TrailingDrop,
		Separator: Separator,
	}
}

// accumulator is the fold state: the group being filled and the records
// flushed so far.
type accumulator struct {
	group   []string
	records []string
}

func (a Assembler) step(acc accumulator, line string) accumulator {
	acc.group = append(acc.group, line)
	if len(acc.group) == a.Threshold {
		acc.records = append(acc.records, strings.Join(acc.group, a.Separator))
		acc.group = nil
	}
	return acc
}

// Assemble removes exactly-empty lines and joins every Threshold lines into
// one record, in source order.
//
// With TrailingDrop the error is always nil. With TrailingError an
// incomplete final group is returned as a *TruncatedRecordError alongside
// the complete records.
func (a Assembler) Assemble(lines []string) ([]string, error) {
	if a.Threshold <= 0 {
		return nil, fmt.Errorf("assembler threshold must be positive, got %d: %w", a.Threshold, winentity.ErrInvalidConfig)
	}

	acc := accumulator{}
	for _, line := range lines {
		if line == "" {
			continue
		}
		acc = a.step(acc, line)
	}

	if len(acc.group) > 0 && a.Policy == TrailingError {
		return acc.records, &TruncatedRecordError{Lines: acc.group, Threshold: a.Threshold}
	}
	return acc.records, nil
}

// Assemble applies the default Assembler for DefaultSchema.
func Assemble(lines []string) []string {
	records, _ := NewAssembler(DefaultSchema).Assemble(lines)
	return records
}
