package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
)

var (
	// ErrDataSource marks a dataset that could not be fetched or parsed.
	ErrDataSource = errors.New("data source")
	// ErrSchema marks a table that lacks an expected column.
	ErrSchema = errors.New("schema")
)

// Table is a header plus string rows, each row as wide as the header.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name or ErrSchema.
func (t *Table) ColumnIndex(name string) (int, error) {
	idx := slices.Index(t.Columns, name)
	if idx < 0 {
		return -1, fmt.Errorf("%w: column %q not found", ErrSchema, name)
	}
	return idx, nil
}

// DropColumn returns a copy of the table without the named column.
func (t *Table) DropColumn(name string) (*Table, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}

	out := &Table{
		Columns: slices.Delete(slices.Clone(t.Columns), idx, idx+1),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = slices.Delete(slices.Clone(row), idx, idx+1)
	}
	return out, nil
}

// Subset returns a table holding the rows at the given positions, in order.
func (t *Table) Subset(indices []int) *Table {
	out := &Table{
		Columns: slices.Clone(t.Columns),
		Rows:    make([][]string, 0, len(indices)),
	}
	for _, i := range indices {
		out.Rows = append(out.Rows, slices.Clone(t.Rows[i]))
	}
	return out
}

// ReadCSV parses a header row followed by records.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty csv", ErrDataSource)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrDataSource, err)
	}

	t := &Table{Columns: header}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteCSV writes the header and every row.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}
