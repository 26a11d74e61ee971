package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Row is one unit of work: an identifying key plus the raw text to score.
// Err marks rows the source could not read; the runner turns those into
// Error sentinel rows instead of aborting the batch.
type Row struct {
	Key   string
	Title string
	Text  string
	Err   error
}

// CSVSource reads rows from a tabular file with url/title/text columns.
// Column lookup is case-insensitive, and a row missing usable text degrades
// to the summary column, then the title, before being marked unreadable.
func CSVSource(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var rows []Row
	for {
		cells, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rows = append(rows, Row{Err: fmt.Errorf("read csv row: %w", err)})
			continue
		}

		row := Row{
			Key:   cell(cells, cols, "url"),
			Title: cell(cells, cols, "title"),
		}
		if row.Title == "" {
			row.Title = cell(cells, cols, "headline")
		}

		text := cell(cells, cols, "text")
		if text == "" {
			text = cell(cells, cols, "summary")
		}
		if text == "" {
			text = row.Title
		}
		if strings.TrimSpace(text) == "" {
			row.Err = fmt.Errorf("row has no usable text column")
		}
		row.Text = text

		rows = append(rows, row)
	}

	return rows, nil
}

func cell(cells []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// DirSource builds one row per regular file in a directory. Files that
// cannot be read carry the error on the row rather than failing the batch.
func DirSource(dir string) ([]Row, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var rows []Row
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		row := Row{Key: path, Title: entry.Name()}

		data, err := os.ReadFile(path)
		if err != nil {
			row.Err = fmt.Errorf("read %s: %w", path, err)
		} else {
			row.Text = string(data)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
