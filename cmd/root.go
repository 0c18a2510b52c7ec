package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ocrdir/pkg/batch"
	"ocrdir/pkg/config"
	"ocrdir/pkg/constants"
	"ocrdir/pkg/logger"
	"ocrdir/pkg/ocr"
	"ocrdir/pkg/scanner"
)

var (
	configPath  string
	profileName string
)

// AppHandler encapsulates application main processing logic
type AppHandler struct {
	config *config.Config
	logger *logger.Logger
	runID  string
}

// NewAppHandler creates an application handler
func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

// Run executes the full batch sequence: load config, initialize logging,
// scan, confirm, process sequentially. Operator cancellation is a normal
// completion, not an error.
func (h *AppHandler) Run() error {
	if err := h.initialize(); err != nil {
		return err
	}
	defer h.logger.Close()

	root, err := h.scanRoot()
	if err != nil {
		h.logger.Error("Failed to resolve scan root: %v", err)
		return err
	}
	h.logger.Info("Searching directory: %s", root)

	files, err := scanner.New(h.logger).Scan(root)
	if err != nil {
		h.logger.Error("Directory scan failed: %v", err)
		return err
	}

	if dump, err := yaml.Marshal(files); err == nil {
		h.logger.Info("Discovered files:\n%s", dump)
	}

	if !batch.Confirm(os.Stdin, os.Stdout, files, h.logger) {
		h.logger.Info("User did not confirm PDF list")
		return nil
	}
	h.logger.Info("User confirmed PDF list")

	engine := ocr.NewDockerEngine(h.config.Docker, h.logger)
	processor := batch.NewProcessor(h.config, engine, h.logger)
	processed, failed := processor.Run(files, profileName)

	h.logger.ProgressAlways("✅", "Done: %d processed, %d failed", processed, failed)
	return nil
}

// initialize loads configuration and sets up logging
func (h *AppHandler) initialize() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	h.config = cfg

	lg, err := logger.New(cfg.Logging.Level, cfg.Logging.PrintLevel, cfg.Logging.LogFile)
	if err != nil {
		return err
	}
	h.logger = lg

	// The log file is append-mode; the run id lets interleaved runs be
	// told apart.
	h.runID = uuid.NewString()
	h.logger.Info("Logging initialized (run %s)", h.runID)
	return nil
}

// scanRoot resolves the directory to scan: the configured input_dir
// relative to the program's own directory unless absolute
func (h *AppHandler) scanRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return h.config.ScanRoot(filepath.Dir(exe)), nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ocr-dir",
	Short: "Batch OCR processing of PDF files",
	Long: `Recursively finds PDF files under the configured input directory, asks
for confirmation, and runs each file through ocrmypdf in a docker
container, writing a text-searchable <name>_ocr.pdf next to each
<name>.pdf.

OCR options are grouped into named profiles in the configuration file and
selected per run with -p/--profile. Files are processed strictly
sequentially; per-file failures are logged and the batch continues.

Examples:
  ocr-dir                          # config.yaml, profile "default"
  ocr-dir -c scans.yaml -p deskew  # explicit config file and profile
  ocr-dir config show              # print the effective configuration`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handler := NewAppHandler()
		if err := handler.Run(); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.DefaultConfigFile,
		"Path to the YAML configuration file")
	rootCmd.Flags().StringVarP(&profileName, "profile", "p", constants.DefaultProfileName,
		"Configuration profile to use")
}
