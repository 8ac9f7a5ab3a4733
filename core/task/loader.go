package task

import (
	"bufio"
	"strings"

	"github.com/spf13/afero"
)

const (
	commentMarker = "#"
	trimCutset    = " \t\r\n"

	// Task files are human written; this bounds a single line.
	maxLineBytes = 1024 * 1024
)

// Line is a logical script line.
type Line struct {
	// Number is the 1-based line number in the source file.
	Number int
	Text   string
}

// CleanLine removes the comment suffix and surrounding whitespace from a
// physical line.
func CleanLine(text string) string {
	if i := strings.Index(text, commentMarker); i >= 0 {
		text = text[:i]
	}
	return strings.Trim(text, trimCutset)
}

// Load reads the logical lines of the task file at path. Blank and comment
// only lines are dropped.
func Load(fs afero.Fs, path string) ([]Line, error) {
	fd, err := fs.Open(path)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}
	defer fd.Close()

	var lines []Line
	scanner := bufio.NewScanner(fd)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for number := 1; scanner.Scan(); number++ {
		text := CleanLine(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, Line{Number: number, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Op: "read", Path: path, Err: err}
	}
	return lines, nil
}
