package constants

// Application constants
const (
	AppName = "ocr-dir"
	// Note: AppVersion is managed via build-time ldflags injection in main.go
)

// Command-line defaults
const (
	DefaultConfigFile  = "config.yaml"
	DefaultProfileName = "default"
)

// File discovery constants
const (
	PDFExtension     = ".pdf"
	OCRNameSuffix    = "_ocr"
	SidecarExtension = ".txt"
)

// Container invocation defaults. The image performs the actual OCR; the
// identity keeps files written through the bind mount owned by the
// invoking user on typical single-user hosts. All four are overridable
// via the docker section of the config file.
const (
	DefaultDockerBinary = "docker"
	DefaultDockerImage  = "jbarlow83/ocrmypdf-alpine"
	DefaultContainerUID = 1000
	DefaultContainerGID = 1000

	// Mount point and working directory inside the container.
	ContainerWorkDir = "/data"
)

// File permission applied to source and OCR output after a successful run
const ProcessedFileMode = 0o664

// Logging defaults
const (
	DefaultLogLevel   = "info"
	DefaultPrintLevel = "info"
	DefaultLogFile    = "ocr_dir.log"
)
