package batch

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"ocrdir/pkg/logger"
	"ocrdir/pkg/types"
)

// Confirm lists the discovered PDFs on out and reads a single yes/no
// answer from in. "y"/"yes" in any case proceeds, anything else cancels:
// the prompt is deliberately one-shot, so the first invalid answer aborts
// the batch rather than re-asking.
func Confirm(in io.Reader, out io.Writer, files map[string]*types.FileDescriptor, log *logger.Logger) bool {
	fmt.Fprintln(out, "The following PDF files will be OCR'd:")
	log.Info("Confirming PDF list")
	for i, name := range SortedNames(files) {
		fmt.Fprintf(out, "%d: %s\n", i, files[name].Path)
	}

	fmt.Fprint(out, "Continue? (y/n, anything else cancels): ")
	scanner := bufio.NewScanner(in)
	scanner.Scan()
	response := strings.TrimSpace(scanner.Text())

	switch strings.ToLower(response) {
	case "yes", "y":
		log.Info("Received %s from user to continue", response)
		return true
	case "no", "n":
		log.Info("Received %s from user to cancel", response)
		return false
	default:
		fmt.Fprintln(out, "Invalid response, cancelling.")
		log.Error("Received invalid user response to confirmation prompt")
		return false
	}
}

// SortedNames returns the descriptor keys in sorted order so listings and
// batch iteration are deterministic
func SortedNames(files map[string]*types.FileDescriptor) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
