package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quizbank/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/quizbank/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/quizbank/internal/charset"
	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/services"
	"github.com/custodia-labs/quizbank/internal/normalisers"
	"github.com/custodia-labs/quizbank/internal/postprocessors"
)

const sampleHTML = `<html><body>
<p>题目汇编</p>
<p>1. 驾驶机动车在道路上行驶，最高速度是多少？<br>A. 30<br>B. 60<br>答案：B</p>
<p>2、如图所示，这个标志是什么意思？<img src="full_output.files/image001.png"></p>
<p>答案：正确</p>
</body></html>`

// setupTestServices installs services backed by in-memory config and history.
func setupTestServices(t *testing.T) (*Services, *memory.RunStore) {
	t.Helper()
	settings := domain.DefaultSettings()

	decoder, err := charset.NewResolver(settings.Encodings, settings.EncodingMarkers)
	require.NoError(t, err)
	finalizer, err := postprocessors.BuildDefaultPipeline(settings)
	require.NoError(t, err)

	runs := memory.NewRunStore()
	banks := jsonfile.NewBankStore()
	s := &Services{
		Extraction: services.NewExtractionService(
			decoder, normalisers.NewDefaultRegistry(settings.ImageMarkers), finalizer, banks, runs,
		),
		Validation: services.NewValidationService(banks, runs),
		History:    services.NewHistoryService(runs),
		Settings:   services.NewSettingsService(memory.NewConfigStore(), services.WithEncodingCheck(charset.ValidateName)),
		ConfigPath: ":memory:",
	}

	old := appServices
	appServices = s
	t.Cleanup(func() { appServices = old })
	return s, runs
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so commands can run again.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
