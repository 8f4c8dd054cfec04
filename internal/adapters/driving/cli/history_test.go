package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/services"
)

func TestHistoryCmd_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand("history")

	require.NoError(t, err)
	assert.Contains(t, out, "Extractions")
	assert.Contains(t, out, "Validations")
	assert.Contains(t, out, "(none)")
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	_, runs := setupTestServices(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, runs.SaveExtraction(ctx, domain.ExtractionRun{
		ID:             "0123456789abcdef",
		InputPath:      "/docs/full.html",
		OutputPath:     "/data/questions_full.json",
		Encoding:       "gb18030",
		Questions:      120,
		DiscardedLines: 4,
		Written:        true,
		StartedAt:      now,
	}))
	require.NoError(t, runs.SaveValidation(ctx, domain.ValidationRun{
		ID:              "fedcba9876543210",
		BankPath:        "/data/questions_full.json",
		Total:           120,
		CriticalCount:   2,
		HideSuggestions: []string{"7", "9"},
		CreatedAt:       now,
	}))

	out, err := executeCommand("history", "--limit", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "01234567  120 questions, 4 discarded, gb18030 [written]")
	assert.Contains(t, out, "/docs/full.html -> /data/questions_full.json")
	assert.Contains(t, out, "fedcba98  120 total, 2 critical, 0 image, 0 content, 2 to hide")
	assert.NotContains(t, out, "(none)")
}

func TestHistoryCmd_Disabled(t *testing.T) {
	s, _ := setupTestServices(t)
	s.History = services.NewHistoryService(nil)

	out, err := executeCommand("history")

	require.NoError(t, err)
	assert.Contains(t, out, "Run history is disabled")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "01234567", shortID("0123456789"))
	assert.Equal(t, "abc", shortID("abc"))
}
