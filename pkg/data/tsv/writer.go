package tsv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/c9s/rescale/pkg/dataset"
)

type Writer struct {
	file io.WriteCloser

	*csv.Writer
}

func NewWriterFile(filename string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return NewWriter(f), nil
}

func NewWriter(file io.WriteCloser) *Writer {
	tsv := csv.NewWriter(file)
	tsv.Comma = '\t'
	return &Writer{
		Writer: tsv,
		file:   file,
	}
}

// WriteTable writes a header row followed by one record per table row.
func (w *Writer) WriteTable(t *dataset.Table) error {
	if err := w.Write([]string{"axis1", "axis2"}); err != nil {
		return err
	}

	for i := 0; i < t.NumRows(); i++ {
		a, b := t.Row(i)
		record := []string{
			strconv.FormatFloat(a, 'f', -1, 64),
			strconv.FormatFloat(b, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) Close() error {
	w.Writer.Flush()
	return w.file.Close()
}
