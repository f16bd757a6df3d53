package store

import (
	"errors"
	"fmt"
)

// Sentinel errors of the note codec. Callers should use [errors.Is].
var (
	// ErrDuplicateNoteID is returned when a stored collection holds two
	// notes with the same id.
	ErrDuplicateNoteID = errors.New("duplicate note id")

	// ErrInvalidNoteID is returned when a stored note has a non-positive id.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrInvalidCreatedAt is returned when a stored createdAt is not an
	// RFC 3339 timestamp.
	ErrInvalidCreatedAt = errors.New("invalid note createdAt")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)

// ErrUnknownDriver is returned by [NewClientStorages] for a driver name it
// does not know.
var ErrUnknownDriver = errors.New("unknown storage driver")

// DecodeError reports a stored blob that could not be decoded into a note
// collection. Blob holds the raw bytes as read.
type DecodeError struct {
	Blob []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding notes blob (%d bytes): %v", len(e.Blob), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
