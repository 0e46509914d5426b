// Package commands provides CLI commands for gemichat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/gemichat/internal/config"
)

var (
	// Global flags
	modelFlag       string
	temperatureFlag float64
	outputFlag      string
	fileFlag        string
	imageFlag       string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// cfg is the process configuration, set by Execute.
var cfg *config.Config

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gemichat [prompt]",
	Short: "Gemini chatbot with a web UI and a one-shot CLI",
	Long: `gemichat serves a multi-modal Gemini chatbot web UI and doubles as a
one-shot CLI for quick queries against the Gemini API.

Examples:
  gemichat serve                        Start the web UI
  gemichat models                       List models available to your key
  gemichat "What is Go?"                Send a single query
  gemichat -f prompt.md                 Read prompt from file
  cat prompt.md | gemichat              Read prompt from stdin
  gemichat "Describe this" -i cat.png   Include an image
  gemichat "Hello" -o response.md       Save response to file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("gemichat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		if len(args) > 0 {
			return runQuery(args[0], !isStdoutTTY())
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command with the loaded process configuration.
func Execute(c *config.Config) {
	cfg = c
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gemini-2.5-flash)")
	rootCmd.Flags().Float64VarP(&temperatureFlag, "temperature", "t", -1, "Sampling temperature in [0,1]")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().StringVarP(&imageFlag, "image", "i", "", "Path to image file to include")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(modelsCmd)
}

// getModel returns the model to use (from flag or config)
func getModel() string {
	if modelFlag != "" {
		return modelFlag
	}
	return cfg.DefaultModel
}

// getTemperature returns the temperature to use (from flag or config)
func getTemperature() float64 {
	if temperatureFlag >= 0 && temperatureFlag <= 1 {
		return temperatureFlag
	}
	return cfg.DefaultTemperature
}
