package batch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocrdir/pkg/config"
	"ocrdir/pkg/types"
	"ocrdir/pkg/utils"
)

// fakeEngine records which descriptors were processed and fails the ones
// listed in errs
type fakeEngine struct {
	calls []string
	errs  map[string]error
}

func (f *fakeEngine) Process(desc *types.FileDescriptor, profile *types.Profile) error {
	f.calls = append(f.calls, desc.Name)
	return f.errs[desc.Name]
}

func testConfig() *config.Config {
	return &config.Config{
		Profiles: map[string]*types.Profile{
			"default": {},
		},
	}
}

func descriptors(names ...string) map[string]*types.FileDescriptor {
	files := make(map[string]*types.FileDescriptor, len(names))
	for _, name := range names {
		files[name] = &types.FileDescriptor{
			Name:    name,
			Path:    "/scans/" + name + ".pdf",
			OCRPath: "/scans/" + name + "_ocr.pdf",
		}
	}
	return files
}

func TestProcessFileMissingProfile(t *testing.T) {
	log, logPath := newTestLogger(t)
	engine := &fakeEngine{}
	processor := NewProcessor(testConfig(), engine, log)

	err := processor.ProcessFile(descriptors("doc")["doc"], "nonexistent")
	require.Error(t, err)

	// No invocation, exactly one error naming the profile.
	assert.Empty(t, engine.calls)
	content := readLog(t, logPath)
	assert.Equal(t, 1, strings.Count(content, "Configuration profile 'nonexistent' not found."))
}

func TestProcessFileInputNotFound(t *testing.T) {
	log, logPath := newTestLogger(t)
	desc := descriptors("doc")["doc"]
	engine := &fakeEngine{errs: map[string]error{
		"doc": utils.NewNotFoundError("input file not found: "+desc.Path, nil),
	}}
	processor := NewProcessor(testConfig(), engine, log)

	err := processor.ProcessFile(desc, "default")
	require.Error(t, err)

	content := readLog(t, logPath)
	assert.Equal(t, 1, strings.Count(content, "Input file not found: "+desc.Path))
}

func TestProcessFileExternalFailure(t *testing.T) {
	log, logPath := newTestLogger(t)
	desc := descriptors("doc")["doc"]
	engine := &fakeEngine{errs: map[string]error{
		"doc": utils.NewOCRError("ocrmypdf: PriorOcrFoundError", nil),
	}}
	processor := NewProcessor(testConfig(), engine, log)

	err := processor.ProcessFile(desc, "default")
	require.Error(t, err)

	content := readLog(t, logPath)
	assert.Contains(t, content, "OCR process failed for "+desc.Path+": ocrmypdf: PriorOcrFoundError")
}

func TestProcessFileUnexpectedFailureLogged(t *testing.T) {
	log, logPath := newTestLogger(t)
	desc := descriptors("doc")["doc"]
	engine := &fakeEngine{errs: map[string]error{
		"doc": utils.NewIOError("failed to create output file "+desc.OCRPath, nil),
	}}
	processor := NewProcessor(testConfig(), engine, log)

	err := processor.ProcessFile(desc, "default")
	require.Error(t, err)
	assert.Contains(t, readLog(t, logPath), "Processing failed for "+desc.Path)
}

func TestRunContinuesPastFailures(t *testing.T) {
	log, _ := newTestLogger(t)
	engine := &fakeEngine{errs: map[string]error{
		"bad": utils.NewOCRError("boom", nil),
	}}
	processor := NewProcessor(testConfig(), engine, log)

	processed, failed := processor.Run(descriptors("aaa", "bad", "zzz"), "default")

	assert.Equal(t, 2, processed)
	assert.Equal(t, 1, failed)
	// Sequential, sorted, and the failure did not stop the batch.
	assert.Equal(t, []string{"aaa", "bad", "zzz"}, engine.calls)
}

func TestRunEmptySet(t *testing.T) {
	log, _ := newTestLogger(t)
	engine := &fakeEngine{}
	processor := NewProcessor(testConfig(), engine, log)

	processed, failed := processor.Run(map[string]*types.FileDescriptor{}, "default")
	assert.Zero(t, processed)
	assert.Zero(t, failed)
	assert.Empty(t, engine.calls)
}
