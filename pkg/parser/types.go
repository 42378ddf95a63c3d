// Package parser loads tab-separated debug logs into named numeric columns.
package parser

// Table is a loaded debug log: one float64 column per header name.
// All columns have the same length, one entry per data row in file order.
type Table struct {
	source  string
	names   []string
	columns map[string][]float64
	rows    int
}

// newTable creates an empty table with the given header names.
func newTable(source string, names []string) *Table {
	t := &Table{
		source:  source,
		names:   names,
		columns: make(map[string][]float64, len(names)),
	}
	for _, name := range names {
		t.columns[name] = []float64{}
	}
	return t
}

// appendRow adds one parsed row. The caller guarantees len(values) == len(t.names).
func (t *Table) appendRow(values []float64) {
	for i, name := range t.names {
		t.columns[name] = append(t.columns[name], values[i])
	}
	t.rows++
}

// Origin returns the path (or label) the table was read from.
func (t *Table) Origin() string {
	return t.source
}

// Names returns the column names in header order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	return t.rows
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the values of the named column.
// A missing column is reported as a MalformedInputError.
func (t *Table) Column(name string) ([]float64, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, &MalformedInputError{
			Source: t.source,
			Reason: "missing column " + quote(name),
		}
	}
	return values, nil
}

// Columns returns several named columns at once, failing on the first missing one.
func (t *Table) Columns(names ...string) ([][]float64, error) {
	out := make([][]float64, 0, len(names))
	for _, name := range names {
		values, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		out = append(out, values)
	}
	return out, nil
}
