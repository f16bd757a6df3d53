// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
)

// tagSeparator joins tags back into editable text.
const tagSeparator = ", "

// ParseTags splits raw on commas, trims every part, drops empty parts and
// removes duplicates keeping the first occurrence. The result is never nil.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

// JoinTags renders tags as the text [ParseTags] reads back.
func JoinTags(tags []string) string {
	return strings.Join(tags, tagSeparator)
}

func removeTag(tags []string, tag string) []string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	return kept
}
