package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ocrdir/pkg/constants"
	"ocrdir/pkg/logger"
	"ocrdir/pkg/types"
	"ocrdir/pkg/utils"
)

// Scanner discovers PDF files under a root directory
type Scanner struct {
	logger *logger.Logger
}

// New creates a scanner
func New(log *logger.Logger) *Scanner {
	return &Scanner{logger: log}
}

// Scan recursively finds every *.pdf under root (matched case-sensitively)
// and returns one descriptor per file, keyed by extension-stripped base
// name. If the root directory has zero entries the walk is skipped
// entirely and an empty map is returned after a warning.
//
// Keying by base name means a later file with the same base name in a
// different subdirectory replaces the earlier one; the overwrite is
// logged so the loss is visible. Existing *_ocr.pdf outputs are not
// excluded, so re-running a directory reprocesses everything.
func (s *Scanner) Scan(root string) (map[string]*types.FileDescriptor, error) {
	s.logger.Info("Begin searching directory: %s", root)
	pdfFiles := make(map[string]*types.FileDescriptor)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO,
			fmt.Sprintf("failed to read directory %s", root))
	}
	if len(entries) == 0 {
		s.logger.Warn("Directory '%s' is empty.", root)
		return pdfFiles, nil
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), constants.PDFExtension) {
			return nil
		}

		s.logger.Info("Found PDF: %s", path)

		absPath, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(d.Name(), constants.PDFExtension)
		ocrName := name + constants.OCRNameSuffix

		if prev, ok := pdfFiles[name]; ok {
			s.logger.Warn("Duplicate base name '%s': %s replaces %s", name, absPath, prev.Path)
		}

		pdfFiles[name] = &types.FileDescriptor{
			Name:    name,
			OCRName: ocrName,
			Sidecar: name + constants.SidecarExtension,
			Path:    absPath,
			OCRPath: filepath.Join(filepath.Dir(absPath), ocrName+constants.PDFExtension),
		}
		return nil
	})
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO,
			fmt.Sprintf("failed to walk directory %s", root))
	}

	return pdfFiles, nil
}
