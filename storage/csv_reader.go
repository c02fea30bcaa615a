package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

// CSVSource streams raw records from the scraped listings export. Only
// the URL, Title and Content columns matter; anything else is ignored.
type CSVSource struct {
	file   *os.File
	reader *csv.Reader
	cols   map[string]int
	logger *zap.SugaredLogger
}

// NewCSVSource opens the input file and validates its header.
func NewCSVSource(path string, logger *zap.SugaredLogger) (*CSVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"url", "title", "content"} {
		if _, ok := cols[required]; !ok {
			_ = file.Close()
			return nil, fmt.Errorf("input CSV is missing the %q column", required)
		}
	}

	logger.Infow("input opened", "path", path)
	return &CSVSource{file: file, reader: reader, cols: cols, logger: logger}, nil
}

// Next returns the next record, or io.EOF once the file is exhausted.
func (s *CSVSource) Next() (*models.RawRecord, error) {
	row, err := s.reader.Read()
	if err != nil {
		return nil, err
	}
	return &models.RawRecord{
		URL:   s.field(row, "url"),
		Title: s.field(row, "title"),
		Body:  s.field(row, "content"),
	}, nil
}

// Close releases the underlying file.
func (s *CSVSource) Close() error {
	return s.file.Close()
}

func (s *CSVSource) field(row []string, name string) string {
	idx := s.cols[name]
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
