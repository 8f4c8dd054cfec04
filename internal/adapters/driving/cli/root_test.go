package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quizbank/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/services"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitOK},
		{"critical issues", domain.ErrCriticalIssues, ExitCriticalIssues},
		{"no questions", fmt.Errorf("%w from x.html", domain.ErrNoQuestions), ExitNoQuestions},
		{"input not found", fmt.Errorf("%w: x.html", domain.ErrInputNotFound), ExitInputNotFound},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"extract", "validate", "history", "config", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestNewServices_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	s, err := NewServices(dir)
	require.NoError(t, err)
	t.Cleanup(func() {
		if s.Close != nil {
			_ = s.Close()
		}
	})

	assert.NotNil(t, s.Extraction)
	assert.NotNil(t, s.Validation)
	assert.NotNil(t, s.History)
	assert.NotNil(t, s.Settings)
	assert.Contains(t, s.ConfigPath, dir)
}

func TestNewServices_HistoryDisabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	s, err := NewServices(dir)
	require.NoError(t, err)
	require.NoError(t, s.Settings.Set("history.enabled", "false"))
	if s.Close != nil {
		require.NoError(t, s.Close())
	}

	s, err = NewServices(dir)
	require.NoError(t, err)
	assert.Nil(t, s.Close)

	_, err = s.History.Extractions(t.Context(), 1)
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
}

func TestNewServices_UnknownEncodingInConfigStillLoads(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(services.KeyEncodings, []string{"utf-9"}))
	require.NoError(t, store.Set(services.KeyHistoryEnabled, false))

	s, err := NewServices(dir)
	require.NoError(t, err)

	require.NoError(t, s.Settings.Set(services.KeyEncodings, "utf-8"))
	assert.Equal(t, []string{"utf-8"}, s.Settings.Get().Encodings)
}
