package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"ocrdir/pkg/config"
	"ocrdir/pkg/constants"
	"ocrdir/pkg/interfaces"
	"ocrdir/pkg/logger"
	"ocrdir/pkg/types"
	"ocrdir/pkg/utils"
)

// DockerEngine runs ocrmypdf inside a throwaway container. The source PDF
// is streamed to the container's stdin and the OCR'd copy is read from
// its stdout, so the bind mount exists only to give the tool a writable
// scratch directory under a non-root identity.
type DockerEngine struct {
	binary string
	image  string
	uid    int
	gid    int
	logger *logger.Logger
}

// NewDockerEngine creates an engine from the docker section of the config
func NewDockerEngine(cfg config.DockerConfig, log *logger.Logger) *DockerEngine {
	return &DockerEngine{
		binary: cfg.Binary,
		image:  cfg.Image,
		uid:    cfg.UID,
		gid:    cfg.GID,
		logger: log,
	}
}

var _ interfaces.Engine = (*DockerEngine)(nil)

// ProfileArgs converts a profile to ocrmypdf command-line tokens. Options
// are emitted in a fixed order; nil options, false switches, and a
// non-positive jobs count contribute nothing.
func ProfileArgs(p *types.Profile) []string {
	var args []string

	if p.Language != nil {
		args = append(args, "-l", *p.Language)
	}
	if p.OutputType != nil {
		args = append(args, "--output-type", *p.OutputType)
	}
	if p.ForceOCR != nil && *p.ForceOCR {
		args = append(args, "--force-ocr")
	}
	if p.Deskew != nil && *p.Deskew {
		args = append(args, "--deskew")
	}
	if p.Clean != nil && *p.Clean {
		args = append(args, "--clean")
	}
	if p.CleanFinal != nil && *p.CleanFinal {
		args = append(args, "--clean-final")
	}
	if p.RotatePages != nil && *p.RotatePages {
		args = append(args, "--rotate-pages")
	}
	if p.RotatePagesThreshold != nil {
		args = append(args, "--rotate-pages-threshold",
			strconv.FormatFloat(*p.RotatePagesThreshold, 'g', -1, 64))
	}
	if p.RemoveBackground != nil && *p.RemoveBackground {
		args = append(args, "--remove-background")
	}
	if p.Oversample != nil {
		args = append(args, "--oversample", strconv.Itoa(*p.Oversample))
	}
	if p.RemoveVectors != nil && *p.RemoveVectors {
		args = append(args, "--remove-vectors")
	}
	if p.Jobs != nil && *p.Jobs > 0 {
		args = append(args, "-j", strconv.Itoa(*p.Jobs))
	}
	if p.PDFRenderer != nil {
		args = append(args, "--pdf-renderer", *p.PDFRenderer)
	}

	return args
}

// CommandArgs builds the full argument list for the container run:
// fixed prefix, profile options, then "- -" for stdin/stdout piping
func (e *DockerEngine) CommandArgs(profile *types.Profile, hostDir string) []string {
	args := []string{
		"run",
		"--rm",
		"-i",
		"--user", fmt.Sprintf("%d:%d", e.uid, e.gid),
		"--workdir", constants.ContainerWorkDir,
		"-v", fmt.Sprintf("%s:%s", hostDir, constants.ContainerWorkDir),
		e.image,
	}
	args = append(args, ProfileArgs(profile)...)
	return append(args, "-", "-")
}

// Process runs the containerized OCR step for one file: source streamed
// in, OCR'd copy streamed out to the destination path, stderr captured
// for diagnostics. The process is fully awaited; there is no timeout.
func (e *DockerEngine) Process(desc *types.FileDescriptor, profile *types.Profile) error {
	hostDir, err := os.Getwd()
	if err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to resolve working directory")
	}
	e.logger.Info("Working directory: %s", hostDir)

	args := e.CommandArgs(profile, hostDir)
	e.logger.Info("Docker command: %s %s", e.binary, strings.Join(args, " "))

	input, err := os.Open(desc.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return utils.NewNotFoundError(fmt.Sprintf("input file not found: %s", desc.Path), err)
		}
		return utils.WrapError(err, utils.ErrorTypeIO,
			fmt.Sprintf("failed to open input file %s", desc.Path))
	}
	defer input.Close()

	output, err := os.Create(desc.OCRPath)
	if err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO,
			fmt.Sprintf("failed to create output file %s", desc.OCRPath))
	}
	defer output.Close()

	var stderr bytes.Buffer
	cmd := exec.Command(e.binary, args...)
	cmd.Stdin = input
	cmd.Stdout = output
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return utils.NewOCRError(stderrText(&stderr), err)
	}

	// Diagnostic tools write informational text to stderr even on
	// success; keep it in the log.
	e.logger.Info("%s", stderrText(&stderr))

	for _, path := range []string{desc.Path, desc.OCRPath} {
		if err := os.Chmod(path, constants.ProcessedFileMode); err != nil {
			e.logger.Warn("Failed to set permissions on %s: %v", path, err)
		}
	}

	return nil
}

// stderrText returns the captured stderr with any invalid UTF-8 dropped
func stderrText(buf *bytes.Buffer) string {
	return strings.ToValidUTF8(buf.String(), "")
}
