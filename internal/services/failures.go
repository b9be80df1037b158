package services

import "time"

// FailureKind classifies a storage failure.
type FailureKind string

const (
	// FailureRead means the durable slot could not be read at load time.
	FailureRead FailureKind = "read"

	// FailureParse means the stored value was malformed and discarded.
	FailureParse FailureKind = "parse"

	// FailureWrite means a save did not reach durable storage.
	FailureWrite FailureKind = "write"
)

// Failure describes a single load or save failure. The in-memory list is
// unaffected either way: load failures fall back to an empty list, save
// failures keep the current state visible.
type Failure struct {
	Kind FailureKind
	Err  error
	At   time.Time
}
