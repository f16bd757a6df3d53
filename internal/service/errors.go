// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// ErrAlreadyLoaded is returned by a second call to LoadInitial.
var ErrAlreadyLoaded = errors.New("notes already loaded")

// CorruptStateError is returned by LoadInitial when the stored blob does not
// decode into a note collection. The store starts empty.
type CorruptStateError struct {
	// Err is the decoding failure.
	Err error
	// BackupErr is set when the raw blob could not be copied aside. The
	// store is then left unloaded so nothing overwrites the original.
	BackupErr error
}

func (e *CorruptStateError) Error() string {
	if e.BackupErr != nil {
		return fmt.Sprintf("stored notes are corrupt (%v) and backup failed: %v", e.Err, e.BackupErr)
	}
	return fmt.Sprintf("stored notes are corrupt: %v", e.Err)
}

func (e *CorruptStateError) Unwrap() []error {
	if e.BackupErr == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.BackupErr}
}

// Recovered reports whether the store continued with an empty collection.
func (e *CorruptStateError) Recovered() bool {
	return e.BackupErr == nil
}

// PersistenceFailure is returned when a write to storage fails. The
// in-memory collection is kept and the next Flush retries the write.
type PersistenceFailure struct {
	// Op names the operation that triggered the write.
	Op  string
	Err error
}

func (e *PersistenceFailure) Error() string {
	return fmt.Sprintf("persist notes after %s: %v", e.Op, e.Err)
}

func (e *PersistenceFailure) Unwrap() error {
	return e.Err
}
