package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one raw data row with its 1-based source line number. The
// header is line 1.
type Row struct {
	LineNo int
	Fields []string
}

// Table is the fully read input: the resolved column positions, the
// delimiter that was used, and every data row in source order.
type Table struct {
	Columns   ColumnMap
	Delimiter rune
	Rows      []Row
}

// ReadTable reads the whole delimited input. When delimiter is zero it
// is sniffed from the header line. The header is resolved before any
// data row is read; a missing logical column aborts immediately.
func ReadTable(r io.Reader, delimiter rune) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	if delimiter == 0 {
		delimiter = DetectDelimiter(firstLine(data))
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := ResolveHeader(header)
	if err != nil {
		return nil, err
	}

	table := &Table{Columns: cols, Delimiter: delimiter}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		table.Rows = append(table.Rows, Row{LineNo: line, Fields: rec})
	}
	return table, nil
}

func firstLine(data []byte) string {
	s := string(data)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
