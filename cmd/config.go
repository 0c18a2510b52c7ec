package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ocrdir/pkg/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
	Long: `Inspect the configuration as the tool sees it: file values merged with
defaults and OCR_DIR_* environment overrides.

Examples:
  ocr-dir config show                  # default config.yaml
  ocr-dir -c scans.yaml config show    # explicit config file`,
}

// configShowCmd represents the 'config show' command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// showConfig loads and prints the effective configuration
func showConfig() {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Error loading configuration: %v\n", err)
		return
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Printf("❌ Error rendering configuration: %v\n", err)
		return
	}

	fmt.Printf("📁 Config file: %s\n\n", configPath)
	fmt.Print(string(out))
}

func init() {
	// Add config command to root
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
