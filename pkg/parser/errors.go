package parser

import (
	"fmt"
	"strconv"
)

// FileAccessError is returned when a log file cannot be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// MalformedInputError is returned when a log file does not have the expected
// tab-separated layout: inconsistent field counts, non-numeric values, an empty
// or duplicated header, or a missing column.
type MalformedInputError struct {
	Source string
	// Line is the 1-based line number, or 0 when the problem is not tied to a line.
	Line   int
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input " + e.Source
	if e.Line > 0 {
		msg += ":" + strconv.Itoa(e.Line)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

func quote(s string) string {
	return strconv.Quote(s)
}
