// Package store is tabler's data provider: a task table loaded from a TOML
// or YAML file, with fetch requests that filter and sort it into live
// results the grid can observe.
package store
