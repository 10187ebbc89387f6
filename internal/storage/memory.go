package storage

import "errors"

// MemorySlot is an in-memory Slot for tests and ephemeral runs.
type MemorySlot struct {
	value   string
	present bool

	// FailReads / FailWrites force errors, for exercising the
	// storage-failure tolerance of callers.
	FailReads  bool
	FailWrites bool
}

// ErrSlotUnavailable is returned by a MemorySlot configured to fail.
var ErrSlotUnavailable = errors.New("slot unavailable")

func (m *MemorySlot) Read() (string, bool, error) {
	if m.FailReads {
		return "", false, ErrSlotUnavailable
	}
	return m.value, m.present, nil
}

func (m *MemorySlot) Write(value string) error {
	if m.FailWrites {
		return ErrSlotUnavailable
	}
	m.value = value
	m.present = true
	return nil
}
