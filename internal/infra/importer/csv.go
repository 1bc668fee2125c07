// Package importer decodes uploaded prospect files (delimited text or a
// spreadsheet workbook) into the common row shape the import usecase
// reconciles.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/weihan-tan/touchpoint/internal/usecase"
)

// DecodeCSV reads delimited text with a header row. Rows where every cell is
// blank are dropped, matching the reference importer's skip-empty-lines
// behavior.
func DecodeCSV(r io.Reader) ([]usecase.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []usecase.RawRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := []usecase.RawRow{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		row := usecase.RawRow{}
		empty := true
		for i, cell := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}

	return rows, nil
}
