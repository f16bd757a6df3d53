// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export writes the note collection out as markdown files with a
// YAML front matter block.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ErrEmptyDir is returned when no target directory is given.
var ErrEmptyDir = errors.New("export: empty target directory")

const (
	frontMatterDelimiter = "---\n"
	maxSlugLength        = 40
	fallbackSlug         = "note"
)

type frontMatter struct {
	ID        int64    `yaml:"id"`
	Title     string   `yaml:"title"`
	Tags      []string `yaml:"tags"`
	CreatedAt string   `yaml:"created_at"`
}

// Markdown writes every note to dir as <id>-<slug>.md and returns the paths
// in collection order. Existing files with the same name are replaced.
func Markdown(ctx context.Context, dir string, notes []models.Note) ([]string, error) {
	log := logger.FromContext(ctx).With().Str("func", "export.Markdown").Logger()

	if strings.TrimSpace(dir) == "" {
		return nil, ErrEmptyDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating export dir: %w", err)
	}

	paths := make([]string, 0, len(notes))
	for _, n := range notes {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		data, err := Render(n)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, FileName(n))
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return paths, fmt.Errorf("error writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	log.Info().Int("count", len(paths)).Str("dir", dir).Msg("notes exported")
	return paths, nil
}

// Render returns the markdown document for n.
func Render(n models.Note) ([]byte, error) {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(frontMatter{
		ID:        int64(n.ID),
		Title:     n.Title,
		Tags:      tags,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	buf.WriteString(frontMatterDelimiter)
	buf.WriteString("\n")
	buf.WriteString(n.Content)
	if n.Content != "" && !strings.HasSuffix(n.Content, "\n") {
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

func FileName(n models.Note) string {
	return fmt.Sprintf("%d-%s.md", n.ID, Slug(n.Title))
}

// Slug lowercases title and keeps letters and digits, joining runs of
// anything else with a single dash.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}

	slug := []rune(b.String())
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	if s := strings.TrimRight(string(slug), "-"); s != "" {
		return s
	}
	return fallbackSlug
}
