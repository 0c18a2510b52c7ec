package types

// FileDescriptor describes one discovered PDF and the paths derived from
// it. Descriptors live only for the duration of a run; nothing is
// persisted. The yaml tags are used when dumping the discovered set to
// the log.
type FileDescriptor struct {
	// Name is the base file name with the extension stripped.
	Name string `yaml:"name"`

	// OCRName is the base name of the OCR'd copy (Name + "_ocr").
	OCRName string `yaml:"ocr_name"`

	// Sidecar is the derived name of a plain-text companion file.
	// Reserved: nothing consumes it yet.
	Sidecar string `yaml:"sidecar"`

	// Path is the absolute path of the source PDF.
	Path string `yaml:"path"`

	// OCRPath is the absolute path the OCR'd copy is written to, in the
	// same directory as the source.
	OCRPath string `yaml:"ocr_path"`
}

// Profile is a named set of ocrmypdf options selected at invocation time
// with -p/--profile. Fields are pointers so that options absent from the
// config (or explicitly null) contribute nothing to the constructed
// command. Unrecognized keys in the config are ignored by decoding.
type Profile struct {
	Language             *string  `mapstructure:"language" yaml:"language,omitempty"`
	OutputType           *string  `mapstructure:"output_type" yaml:"output_type,omitempty"`
	ForceOCR             *bool    `mapstructure:"force_ocr" yaml:"force_ocr,omitempty"`
	Deskew               *bool    `mapstructure:"deskew" yaml:"deskew,omitempty"`
	Clean                *bool    `mapstructure:"clean" yaml:"clean,omitempty"`
	CleanFinal           *bool    `mapstructure:"clean_final" yaml:"clean_final,omitempty"`
	RotatePages          *bool    `mapstructure:"rotate_pages" yaml:"rotate_pages,omitempty"`
	RotatePagesThreshold *float64 `mapstructure:"rotate_pages_threshold" yaml:"rotate_pages_threshold,omitempty"`
	RemoveBackground     *bool    `mapstructure:"remove_background" yaml:"remove_background,omitempty"`
	Oversample           *int     `mapstructure:"oversample" yaml:"oversample,omitempty"`
	RemoveVectors        *bool    `mapstructure:"remove_vectors" yaml:"remove_vectors,omitempty"`
	Jobs                 *int     `mapstructure:"jobs" yaml:"jobs,omitempty"`
	PDFRenderer          *string  `mapstructure:"pdf_renderer" yaml:"pdf_renderer,omitempty"`
}
