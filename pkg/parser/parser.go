package parser

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads a tab-separated debug log from path.
// The first non-comment line names the columns; every following line holds one
// numeric value per column.
func Load(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided log path is expected
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(ctx, bufio.NewReaderSize(f, 64*1024), path)
}

// Parse reads a tab-separated debug log from r. source is used in error messages
// and recorded on the returned table.
func Parse(ctx context.Context, r io.Reader, source string) (*Table, error) {
	reader := newReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MalformedInputError{Source: source, Reason: "missing header row"}
	}
	if err != nil {
		return nil, readError(source, err)
	}

	names, err := headerNames(source, header)
	if err != nil {
		return nil, err
	}

	table := newTable(source, names)
	values := make([]float64, len(names))

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(source, err)
		}

		line, _ := reader.FieldPos(0)
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &MalformedInputError{
					Source: source,
					Line:   line,
					Reason: fmt.Sprintf("column %s is not numeric", quote(names[i])),
					Err:    err,
				}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &MalformedInputError{
					Source: source,
					Line:   line,
					Reason: fmt.Sprintf("column %s is not finite", quote(names[i])),
				}
			}
			values[i] = v
		}
		table.appendRow(values)
	}

	return table, nil
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	// TrimLeadingSpace stays off: it treats a tab delimiter as space and merges
	// empty fields into the next one. Values are trimmed after the split.
	reader.ReuseRecord = true
	// FieldsPerRecord == 0 pins the count to the header's.
	reader.FieldsPerRecord = 0
	return reader
}

// headerNames validates and copies the header record. The reader reuses its
// record slice, so the names must be copied before the next Read.
func headerNames(source string, header []string) ([]string, error) {
	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))

	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, &MalformedInputError{
				Source: source,
				Line:   1,
				Reason: fmt.Sprintf("header field %d is empty", i+1),
			}
		}
		if seen[name] {
			return nil, &MalformedInputError{
				Source: source,
				Line:   1,
				Reason: "duplicate column " + quote(name),
			}
		}
		seen[name] = true
		names[i] = name
	}

	return names, nil
}

// readError classifies an error from the csv reader.
func readError(source string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		reason := "unreadable row"
		if errors.Is(parseErr.Err, csv.ErrFieldCount) {
			reason = "field count differs from header"
		}
		return &MalformedInputError{
			Source: source,
			Line:   parseErr.Line,
			Reason: reason,
			Err:    parseErr.Err,
		}
	}
	return &FileAccessError{Path: source, Err: err}
}
