// Package shell is the boundary to the external metadata command.
//
// It builds the PowerShell pipeline that prints one property block per
// filesystem entity, runs it, and decodes the captured bytes into text
// for the record parser. Nothing here interprets the listing itself.
package shell
