package record

const (
	// DefaultHeaderLines is the number of banner lines the metadata command
	// prints before the first entity block.
	DefaultHeaderLines = 2

	// DefaultWindowLines is the height of one visual record window in the
	// command's list rendering.
	DefaultWindowLines = 8
)

// Segmenter isolates the property lines of one invocation's output.
// Windowing is purely positional; line content is never inspected.
type Segmenter struct {
	HeaderLines int
	WindowLines int
}

// NewSegmenter returns a Segmenter with the default header and window sizes.
func NewSegmenter() Segmenter {
	return Segmenter{
		HeaderLines: DefaultHeaderLines,
		WindowLines: DefaultWindowLines,
	}
}

// Windows drops the header lines and groups the rest into consecutive
// windows of WindowLines lines, counted from the first post-header line.
// The last window may be partial. Fewer lines than the header yields nil.
func (s Segmenter) Windows(lines []string) [][]string {
	header := s.HeaderLines
	if header < 0 {
		header = 0
	}
	if len(lines) < header {
		return nil
	}
	body := lines[header:]
	if len(body) == 0 {
		return nil
	}

	size := s.WindowLines
	if size <= 0 {
		size = len(body)
	}

	windows := make([][]string, 0, (len(body)+size-1)/size)
	for start := 0; start < len(body); start += size {
		end := start + size
		if end > len(body) {
			end = len(body)
		}
		windows = append(windows, body[start:end:end])
	}
	return windows
}

// Segment returns the flattened concatenation of all windows in their
// original order.
func (s Segmenter) Segment(lines []string) []string {
	windows := s.Windows(lines)
	if len(windows) == 0 {
		return nil
	}

	out := make([]string, 0, len(lines))
	for _, w := range windows {
		out = append(out, w...)
	}
	return out
}

// Segment applies the default Segmenter.
func Segment(lines []string) []string {
	return NewSegmenter().Segment(lines)
}
