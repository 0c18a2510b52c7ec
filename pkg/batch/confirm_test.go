package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocrdir/pkg/logger"
	"ocrdir/pkg/types"
)

func newTestLogger(t *testing.T) (*logger.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	log, err := logger.New("debug", "error", path)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func sampleFiles() map[string]*types.FileDescriptor {
	return map[string]*types.FileDescriptor{
		"file2": {Name: "file2", Path: "/scans/file2.pdf"},
		"file1": {Name: "file1", Path: "/scans/file1.pdf"},
	}
}

func TestConfirmResponses(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"yes", true},
		{"Y", true},
		{"YES", true},
		{"n", false},
		{"no", false},
		{"N", false},
		{"NO", false},
		// Anything else cancels on the first attempt, no re-prompt.
		{"maybe", false},
		{"yess", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run("input_"+tc.input, func(t *testing.T) {
			log, _ := newTestLogger(t)
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tc.input+"\n"), &out, sampleFiles(), log)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfirmListsFilesSorted(t *testing.T) {
	log, _ := newTestLogger(t)
	var out bytes.Buffer

	Confirm(strings.NewReader("n\n"), &out, sampleFiles(), log)

	text := out.String()
	assert.Contains(t, text, "The following PDF files will be OCR'd:")
	assert.Contains(t, text, "0: /scans/file1.pdf")
	assert.Contains(t, text, "1: /scans/file2.pdf")
	assert.Less(t, strings.Index(text, "file1.pdf"), strings.Index(text, "file2.pdf"))
}

func TestConfirmInvalidLogsError(t *testing.T) {
	log, logPath := newTestLogger(t)
	var out bytes.Buffer

	got := Confirm(strings.NewReader("whatever\n"), &out, sampleFiles(), log)
	assert.False(t, got)
	assert.Contains(t, out.String(), "Invalid response")
	assert.Contains(t, readLog(t, logPath), "invalid user response")
}

func TestSortedNames(t *testing.T) {
	assert.Equal(t, []string{"file1", "file2"}, SortedNames(sampleFiles()))
}
