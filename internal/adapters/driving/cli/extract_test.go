package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quizbank/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/quizbank/internal/core/domain"
)

func TestExtractCmd_Use(t *testing.T) {
	assert.Equal(t, "extract", extractCmd.Use)
}

func TestExtractCmd_Flags(t *testing.T) {
	for _, name := range []string{"input", "output", "dry-run", "watch"} {
		assert.NotNil(t, extractCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "i", extractCmd.Flags().Lookup("input").Shorthand)
	assert.Equal(t, domain.DefaultBankFile, extractCmd.Flags().Lookup("output").DefValue)
}

func TestExtractCmd_RequiresInput(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand("extract")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "input")
}

func TestExtractCmd_WritesBank(t *testing.T) {
	_, runs := setupTestServices(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "full_output.html")
	output := filepath.Join(dir, "out", "bank.json")
	require.NoError(t, os.WriteFile(input, []byte(sampleHTML), 0644))

	out, err := executeCommand("extract", "-i", input, "-o", output)

	require.NoError(t, err)
	assert.Contains(t, out, "Input: "+input)
	assert.Contains(t, out, "Output: "+output)
	assert.Contains(t, out, "Encoding: utf-8")
	assert.Contains(t, out, "Parsed 2 questions.")
	assert.Contains(t, out, "Discarded 1 unrecognised lines.")
	assert.Contains(t, out, "Successfully saved to "+output)

	questions, err := jsonfile.NewBankStore().Load(context.Background(), output)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, domain.QuestionTypeJudgment, questions[1].Type)

	extractions, err := runs.ListExtractions(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, extractions, 1)
	assert.True(t, extractions[0].Written)
}

func TestExtractCmd_DryRun(t *testing.T) {
	setupTestServices(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "full_output.html")
	output := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(input, []byte(sampleHTML), 0644))

	out, err := executeCommand("extract", "-i", input, "-o", output, "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, "Parsed 2 questions.")
	assert.Contains(t, out, "Dry run: nothing written.")
	assert.NoFileExists(t, output)
}

func TestExtractCmd_NoQuestions(t *testing.T) {
	setupTestServices(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.html")
	output := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(input, []byte("<p>题目汇编</p>"), 0644))
	require.NoError(t, os.WriteFile(output, []byte(`[{"id":"1"}]`), 0644))

	out, err := executeCommand("extract", "-i", input, "-o", output)

	assert.ErrorIs(t, err, domain.ErrNoQuestions)
	assert.Equal(t, ExitNoQuestions, ExitCode(err))
	assert.Contains(t, out, "Parsed 0 questions.")

	data, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	assert.Equal(t, `[{"id":"1"}]`, string(data))
}

func TestExtractCmd_InputNotFound(t *testing.T) {
	setupTestServices(t)
	dir := t.TempDir()

	_, err := executeCommand("extract", "-i", filepath.Join(dir, "missing.html"), "-o", filepath.Join(dir, "b.json"))

	assert.ErrorIs(t, err, domain.ErrInputNotFound)
	assert.Equal(t, ExitInputNotFound, ExitCode(err))
}

func TestExtractCmd_ResolvesRelativePaths(t *testing.T) {
	s, _ := setupTestServices(t)
	root := t.TempDir()
	require.NoError(t, s.Settings.Set("paths.project_root", root))
	require.NoError(t, s.Settings.Set("paths.data_dir", "public/data"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "full_output.html"), []byte(sampleHTML), 0644))

	out, err := executeCommand("extract", "-i", "full_output.html")

	require.NoError(t, err)
	expected := filepath.Join(root, "public", "data", domain.DefaultBankFile)
	assert.Contains(t, out, "Successfully saved to "+expected)
	assert.FileExists(t, expected)
}
