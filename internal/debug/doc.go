// Package debug provides the debug log for tabler.
//
// When enabled via the --debug flag, it records scope lifecycle, data file
// access and key handling to a file so a running terminal UI can be
// diagnosed without writing to the screen.
package debug
