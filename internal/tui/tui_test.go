package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

func TestNew_NilService(t *testing.T) {
	ui, err := New(nil, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, ui)
	assert.ErrorIs(t, err, ErrNilService)
}

func TestRun_QuitKey(t *testing.T) {
	_, s := newTestModel(t)

	ui, err := New(s, models.AppBuildInfo{}, nil,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
	)
	require.NoError(t, err)

	assert.NoError(t, ui.Run(context.Background(), nil))
}

func TestRun_CancelledContext(t *testing.T) {
	_, s := newTestModel(t)

	ui, err := New(s, models.AppBuildInfo{}, logger.Nop(),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, ui.Run(ctx, nil))
}
