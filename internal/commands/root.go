// Package commands provides CLI commands for promptrelay.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/promptrelay/internal/config"
)

var (
	// Global flags
	modelFlag  string
	outputFlag string
	fileFlag   string
	rawFlag    bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promptrelay [prompt]",
	Short: "Relay a prompt to Gemini and save the response",
	Long: `promptrelay sends a single text prompt to the Gemini API and writes
the generated response to a local file (content.md by default),
replacing whatever was there before.

The API key is read from the GEMINI_API_KEY environment variable.

Examples:
  promptrelay "What is Go?"             Send a single prompt
  promptrelay -f prompt.md              Read prompt from file
  cat prompt.md | promptrelay           Read prompt from stdin
  promptrelay "Hello" -o answer.md      Save response to a different file
  promptrelay "Hello" --raw             Print only the response text`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("promptrelay %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runRelay(string(data), rawFlag)
		}

		// Check for positional argument
		if len(args) > 0 {
			return runRelay(args[0], rawFlag)
		}

		// Check for piped stdin
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runRelay(string(data), rawFlag)
		}

		// Interactive terminal: read a single line, newline-terminated.
		// An empty line is a valid prompt and is relayed as-is.
		if isStdinTTY() {
			line, err := readPromptLine(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read prompt: %w", err)
			}
			return runRelay(line, rawFlag)
		}

		// No input - show help
		return cmd.Help()
	},
}

// readPromptLine reads one line from r, stripping the trailing newline
func readPromptLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gemini-2.5-flash)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file (default content.md)")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolVarP(&rawFlag, "raw", "r", false, "Print only the raw response text")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
}

// getModel returns the model name to use (from flag or config)
func getModel() string {
	if modelFlag != "" {
		return modelFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil || cfg.DefaultModel == "" {
		return "gemini-2.5-flash"
	}
	return cfg.DefaultModel
}

// getOutputPath returns the response file path (from flag or config)
func getOutputPath(cfg config.Config) string {
	if outputFlag != "" {
		return outputFlag
	}
	if cfg.OutputFile != "" {
		return cfg.OutputFile
	}
	return config.DefaultOutputFile
}
