// Package grid binds a live, observable record source to a rendered table.
//
// A Grid owns one Projector, which keeps a Scope per record identity, and one
// Interaction, which tracks the hovered row and the header's Context. The
// caller supplies the header, row and background slots as plain functions
// returning strings; Render produces a Frame that the host (usually a Bubble
// Tea model) turns into terminal output with Frame.String.
//
// A Grid is driven from a single goroutine, the host's update loop, and is not
// safe for concurrent use.
package grid
