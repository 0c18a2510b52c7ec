package interfaces

import "ocrdir/pkg/types"

// Engine runs the external OCR step for one discovered file, producing
// the OCR'd copy at the descriptor's output path
type Engine interface {
	// Process streams the source file through the external OCR tool into
	// the destination path, applying the options of the given profile.
	Process(desc *types.FileDescriptor, profile *types.Profile) error
}
