// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// note keeper client.
//
// All Msg* constants are human-readable message strings shown in the TUI
// error overlay or printed by the command. Keeping them in one place ensures
// consistent wording throughout the client.
package app

const (
	// MsgNotesSaveFailed is shown when a write to storage fails. The edit is
	// kept in memory and retried in the background.
	MsgNotesSaveFailed = "could not save notes; your changes are kept and will be retried"

	// MsgNotesCorrupt is shown at start when the stored notes could not be
	// read and a backup of them was made.
	MsgNotesCorrupt = "stored notes were unreadable; a backup was kept and you start with an empty list"

	// MsgNotesCorruptNoBackup is printed when the stored notes are unreadable
	// and no backup could be made, so the client refuses to continue.
	MsgNotesCorruptNoBackup = "stored notes are unreadable and could not be backed up; refusing to start"

	// MsgNotesLoadFailed is printed when storage cannot be read at all.
	MsgNotesLoadFailed = "could not read stored notes"

	// MsgClipboardFailed is shown when copying a note to the clipboard fails.
	MsgClipboardFailed = "could not copy note to clipboard"

	// MsgExportFailed is printed when the markdown export fails.
	MsgExportFailed = "could not export notes"

	// MsgUnexpectedError is shown for any error without a dedicated message.
	MsgUnexpectedError = "unexpected error"
)
