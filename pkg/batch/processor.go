package batch

import (
	"ocrdir/pkg/config"
	"ocrdir/pkg/interfaces"
	"ocrdir/pkg/logger"
	"ocrdir/pkg/types"
	"ocrdir/pkg/utils"
)

// Processor runs the confirmed batch strictly sequentially: one external
// OCR process is launched and fully awaited before the next file begins.
// Every per-file failure is logged and the batch moves on; only config
// loading, upstream of the processor, is fatal to a run.
type Processor struct {
	config *config.Config
	engine interfaces.Engine
	logger *logger.Logger
}

// NewProcessor creates a batch processor
func NewProcessor(cfg *config.Config, engine interfaces.Engine, log *logger.Logger) *Processor {
	return &Processor{
		config: cfg,
		engine: engine,
		logger: log,
	}
}

// ProcessFile runs the OCR step for one descriptor. Each failure mode is
// logged exactly once here, attributed to the file; the returned error is
// only used by Run for accounting and must not be logged again.
func (p *Processor) ProcessFile(desc *types.FileDescriptor, profileName string) error {
	profile, err := p.config.Profile(profileName)
	if err != nil {
		p.logger.Error("Configuration profile '%s' not found.", profileName)
		return err
	}

	if err := p.engine.Process(desc, profile); err != nil {
		switch utils.GetErrorType(err) {
		case utils.ErrorTypeNotFound:
			p.logger.Error("Input file not found: %s", desc.Path)
		case utils.ErrorTypeOCR:
			p.logger.Error("OCR process failed for %s: %s", desc.Path, utils.GetErrorMessage(err))
		default:
			// Wider than the two documented conditions: an unwritable
			// destination or similar surprise skips the file instead of
			// aborting the batch.
			p.logger.Error("Processing failed for %s: %v", desc.Path, err)
		}
		return err
	}

	return nil
}

// Run processes every descriptor in sorted base-name order and returns
// the success and failure counts
func (p *Processor) Run(files map[string]*types.FileDescriptor, profileName string) (processed, failed int) {
	total := len(files)
	for i, name := range SortedNames(files) {
		desc := files[name]
		p.logger.ProgressAlways("📄", "Processing %d/%d: %s", i+1, total, desc.Name)
		p.logger.Info("Processing PDF: %s", desc.Name)

		if err := p.ProcessFile(desc, profileName); err != nil {
			failed++
			continue
		}
		processed++
	}

	p.logger.Info("Batch complete: %d processed, %d failed", processed, failed)
	return processed, failed
}
