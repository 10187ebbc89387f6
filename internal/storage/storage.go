// Package storage provides the durable key-value slot backing progress
// persistence. Callers treat a slot as a single named value; the SQLite
// implementation keeps one row per key.
package storage

// Slot is a durable key-value slot holding one serialized value.
type Slot interface {
	// Read returns the stored value and whether one exists.
	Read() (value string, ok bool, err error)

	// Write replaces the stored value.
	Write(value string) error
}
