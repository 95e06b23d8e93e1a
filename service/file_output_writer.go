package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/stylescan/stylescan/domain"
)

// FileOutputWriter writes rendered output to a file or a provided writer,
// implementing domain.ReportWriter. Grounded on pyscn's FileOutputWriter,
// minus its HTML-report browser-opening branch: stylescan's serve command
// opens the browser itself, so the one-shot CLI write path stays silent
// about dialects other than reporting the path it wrote.
type FileOutputWriter struct {
	status io.Writer
}

// NewFileOutputWriter creates a new FileOutputWriter; status messages go to
// os.Stderr if status is nil.
func NewFileOutputWriter(status io.Writer) *FileOutputWriter {
	if status == nil {
		status = os.Stderr
	}
	return &FileOutputWriter{status: status}
}

// Write implements domain.ReportWriter.
func (w *FileOutputWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, writeFunc func(io.Writer) error) error {
	var out io.Writer
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return domain.NewOutputError(fmt.Sprintf("failed to create output file: %s", outputPath), err)
		}
		defer file.Close()
		out = file
	} else {
		out = writer
	}

	if err := writeFunc(out); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			absPath = outputPath
		}
		fmt.Fprintf(w.status, "%s written: %s\n", strings.ToUpper(string(format)), absPath)
	}
	return nil
}
