// Package ui provides the task grid's slots and the surrounding screen.
//
// HeaderSlot, RowSlot and BackgroundSlot plug into a grid.Grid; Render wraps
// the grid's frame with the title, filter line, status and help footer.
// Rendering is pure and kept apart from state management in package app.
package ui
