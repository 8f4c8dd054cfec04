package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the settings stored in config.toml.

Keys:
  paths.project_root     base for relative input paths
  paths.data_dir         directory for question banks and hide lists
  extract.encodings      ordered encoding candidates (comma separated)
  extract.markers        text a correct decoding must contain
  extract.image_markers  path fragments identifying question images
  finalize.max_images    largest image list kept unchanged
  finalize.keep_images   images kept when max_images is exceeded
  history.enabled        record runs in the history database
  history.data_dir       directory of the history database`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadServices()
		if err != nil {
			return err
		}
		cmd.Println(s.ConfigPath)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s, err := loadServices()
	if err != nil {
		return err
	}

	settings := s.Settings.Get()
	for _, key := range s.Settings.Keys() {
		cmd.Printf("%-22s = %s\n", key, settingValue(settings, key))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	s, err := loadServices()
	if err != nil {
		return err
	}

	if err := s.Settings.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", args[0], settingValue(s.Settings.Get(), args[0]))
	return nil
}

// settingValue renders the effective value of key.
func settingValue(settings domain.Settings, key string) string {
	switch key {
	case services.KeyProjectRoot:
		return settings.ProjectRoot
	case services.KeyDataDir:
		return settings.DataDir
	case services.KeyEncodings:
		return strings.Join(settings.Encodings, ", ")
	case services.KeyEncodingMarkers:
		return strings.Join(settings.EncodingMarkers, ", ")
	case services.KeyImageMarkers:
		return strings.Join(settings.ImageMarkers, ", ")
	case services.KeyMaxImages:
		return strconv.Itoa(settings.MaxImages)
	case services.KeyKeepImages:
		return strconv.Itoa(settings.KeepImages)
	case services.KeyHistoryEnabled:
		return strconv.FormatBool(settings.HistoryEnabled)
	case services.KeyHistoryDir:
		if settings.HistoryDir == "" {
			return "(default)"
		}
		return settings.HistoryDir
	default:
		return fmt.Sprintf("(unknown key %q)", key)
	}
}
