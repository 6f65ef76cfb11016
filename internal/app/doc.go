// Package app provides the Bubble Tea application model for tabler.
//
// It hosts a grid.Grid over live task results from the store, translates
// mouse motion and keys into hover changes, and routes edits back to the
// store, which notifies the affected rows.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View).
package app
