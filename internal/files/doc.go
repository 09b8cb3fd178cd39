// Package files groups file access used by the offline commands.
//
//   - filesystem: read captured command output from disk or memory
package files
