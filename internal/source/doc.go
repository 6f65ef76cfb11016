// Package source provides an in-memory, observable record sequence and the
// change-notification helper records embed to be observable.
package source
