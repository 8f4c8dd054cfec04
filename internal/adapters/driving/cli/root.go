// Package cli implements the quizbank command line.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/logger"
)

// Exit codes returned by the quizbank binary.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitCriticalIssues = 2
	ExitNoQuestions    = 3
	ExitInputNotFound  = 4
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "quizbank",
	Short: "Build quiz question banks from exported Word documents",
	Long: `quizbank extracts multiple-choice and true/false questions from
Word documents exported as HTML, writes them to a JSON question bank
and checks the bank for structural problems.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default $QUIZBANK_CONFIG_DIR or ~/.quizbank)")
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer closeServices()

	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrCriticalIssues):
		return ExitCriticalIssues
	case errors.Is(err, domain.ErrNoQuestions):
		return ExitNoQuestions
	case errors.Is(err, domain.ErrInputNotFound):
		return ExitInputNotFound
	default:
		return ExitFailure
	}
}
