// Package services implements winentity.Inspector on top of a
// CommandRunner and the record parser.
package services
