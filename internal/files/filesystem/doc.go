// Package filesystem abstracts the file reads behind `winentity parse`.
//
// Captured listings are read either one file at a time or by walking a
// directory of captures. OSFileSystem serves production use and
// MemoryFileSystem serves tests.
package filesystem
