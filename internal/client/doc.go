// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the note keeper process lifecycle.
//
// It loads the stored collection, then either exports it and exits or runs
// the terminal UI with the background flush job, and writes any pending
// change on the way out.
package client
