// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the note keeper core: [NoteStore] owns the note
// collection, the editing draft and the view filters, and persists the
// collection through a [store.NoteRepository] after every mutation.
//
// The pure helpers [ParseTags], [TagUniverse] and [FilterNotes] compute the
// derived views; [FlushJob] retries writes that failed.
package service
