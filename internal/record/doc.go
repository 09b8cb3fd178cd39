// Package record turns the line-oriented output of the platform metadata
// command into typed winentity.Entity values.
//
// # Pipeline
//
// One invocation's standard output flows through three stages, each a pure
// function of its input:
//
//	SplitLines -> Segmenter -> Assembler -> Decoder
//
//   - Segmenter drops the two banner lines and groups the remaining lines
//     into fixed 8-line windows (positional, content is never inspected).
//   - Assembler removes blank padding lines and joins every
//     PropertiesPerEntity lines into one delimited record.
//   - Decoder splits a record back into labeled property lines, applies the
//     label schema and decodes the Mode token into type and permission tags.
//
// # Input Format
//
// The metadata command renders each entity as a block of labeled lines:
//
//	Mode           : d-----
//	Owner          : DESKTOP\me
//	LastWriteTime  : 1/2/2024 10:11:12 AM
//	Name           : Desktop
//	CreationTime   : 1/1/2024 09:00:00 AM
//	Attributes     : Directory
//	LastAccessTime : 1/3/2024 08:00:00 AM
//	Length         : 0
//	FullName       : C:\Users\me\Desktop
//
// # Robustness
//
// Field problems never fail a record: unknown labels are ignored, missing
// labels leave zero values, and an unparsable Length decodes as 0. The only
// error the pipeline returns is ErrTruncatedOutput, and only when the
// Assembler runs with TrailingError.
package record
