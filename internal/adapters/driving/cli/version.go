package cli

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quizbank/internal/adapters/driving/mcp"
	"github.com/custodia-labs/quizbank/internal/normalisers"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "Print the version number, the build revision and the input formats this build reads.",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("quizbank version %s\n", version)
		if rev := buildRevision(); rev != "" {
			cmd.Printf("Revision: %s\n", rev)
		}
		cmd.Printf("MCP server: %s\n", mcp.Version)
		formats := normalisers.NewDefaultRegistry(nil).SupportedMIMETypes()
		cmd.Printf("Input formats: %s\n", strings.Join(formats, ", "))
	},
}

// buildRevision returns the short VCS revision stamped into the binary.
func buildRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return s.Value[:12]
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
