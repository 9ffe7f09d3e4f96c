package repository

import (
	"errors"
	"fmt"
)

// Collections read from the record source.
const (
	CollectionToyLogs    = "toy_logs"
	CollectionSentiments = "sentiment_logs"
	CollectionInterests  = "interest_logs"
	CollectionUsers      = "users"
	CollectionDevices    = "devices"
)

var (
	// ErrNotFound is wrapped by lookups that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is wrapped when an insert hits a unique constraint.
	ErrDuplicate = errors.New("duplicate")
)

// RecordSourceError is the one failure kind the record source produces.
// Op is the repository method, Err the transport or decode cause.
type RecordSourceError struct {
	Collection string
	Op         string
	Err        error
}

func (e *RecordSourceError) Error() string {
	return fmt.Sprintf("record source: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *RecordSourceError) Unwrap() error {
	return e.Err
}

func sourceError(collection, op string, err error) error {
	return &RecordSourceError{Collection: collection, Op: op, Err: err}
}

// AsRecordSourceError unwraps err to a *RecordSourceError.
func AsRecordSourceError(err error) (*RecordSourceError, bool) {
	var rse *RecordSourceError
	if errors.As(err, &rse) {
		return rse, true
	}
	return nil, false
}
