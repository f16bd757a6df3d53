// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// errClipboard marks failures of the system clipboard.
var errClipboard = errors.New("clipboard unavailable")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, errClipboard) {
		return app.MsgClipboardFailed
	}
	return service.UserMessage(err)
}
