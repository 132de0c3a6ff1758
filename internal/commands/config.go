package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diogo/promptrelay/internal/config"
)

// configCmd manages the persisted settings
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage promptrelay settings",
	Long: `Read and write promptrelay settings stored in ~/.promptrelay/config.json.

Keys:
  default_model      Model used when -m is not given
  output_file        File the response is written to (default content.md)
  verbose            Print request details to stderr (true/false)
  copy_to_clipboard  Copy the response to the clipboard (true/false)
  markdown.style     Glamour style for terminal rendering (dark, light, ...)`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("default_model      %s\n", cfg.DefaultModel)
		fmt.Printf("output_file        %s\n", cfg.OutputFile)
		fmt.Printf("verbose            %t\n", cfg.Verbose)
		fmt.Printf("copy_to_clipboard  %t\n", cfg.CopyToClipboard)
		fmt.Printf("markdown.style     %s\n", cfg.Markdown.Style)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		value, err := configValue(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if err := applyConfigValue(&cfg, args[0], args[1]); err != nil {
			return err
		}

		return config.SaveConfig(cfg)
	},
}

// configValue reads a setting by key
func configValue(cfg config.Config, key string) (string, error) {
	switch key {
	case "default_model":
		return cfg.DefaultModel, nil
	case "output_file":
		return cfg.OutputFile, nil
	case "verbose":
		return strconv.FormatBool(cfg.Verbose), nil
	case "copy_to_clipboard":
		return strconv.FormatBool(cfg.CopyToClipboard), nil
	case "markdown.style":
		return cfg.Markdown.Style, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// applyConfigValue writes a setting by key
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "default_model":
		cfg.DefaultModel = value
	case "output_file":
		if value == "" {
			return fmt.Errorf("output_file cannot be empty")
		}
		cfg.OutputFile = value
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false")
		}
		cfg.Verbose = b
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be true or false")
		}
		cfg.CopyToClipboard = b
	case "markdown.style":
		cfg.Markdown.Style = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
