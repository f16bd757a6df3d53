// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/app"
)

// UserMessage translates a service error into the text shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var corrupt *CorruptStateError
	var failure *PersistenceFailure

	switch {
	case errors.As(err, &corrupt):
		if corrupt.Recovered() {
			return app.MsgNotesCorrupt
		}
		return app.MsgNotesCorruptNoBackup
	case errors.As(err, &failure):
		return app.MsgNotesSaveFailed
	}

	return app.MsgUnexpectedError
}
