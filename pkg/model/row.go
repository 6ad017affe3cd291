// pkg/model/row.go
package model

// Row is one record of an uploaded tabular dataset. Cell values are kept as
// uploaded; a missing key in Cells means the cell is absent, which most
// readers treat the same as an empty string.
//
// Rows are value-like: pipeline stages never mutate a Row they received, they
// Clone it and work on the copy. Meta is nil until the row has passed through
// the fix engine.
type Row struct {
	Columns []string          // column order as uploaded, plus columns added by fixes
	Cells   map[string]string // column name -> cell value
	Meta    *RowMeta          // fix metadata, never exported as a data column
}

// NewRow creates an empty row with the given column order.
func NewRow(columns []string) Row {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return Row{
		Columns: cols,
		Cells:   make(map[string]string, len(columns)),
	}
}

// Get returns the cell value for a column and whether the cell is present.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.Cells[column]
	return v, ok
}

// Value returns the cell value for a column, or "" when absent.
func (r Row) Value(column string) string {
	return r.Cells[column]
}

// Set writes a cell value, appending the column to the order when it is new.
func (r *Row) Set(column, value string) {
	if _, ok := r.Cells[column]; !ok {
		r.Columns = append(r.Columns, column)
	}
	r.Cells[column] = value
}

// Clone returns a deep copy of the row, including metadata.
func (r Row) Clone() Row {
	out := Row{
		Columns: make([]string, len(r.Columns)),
		Cells:   make(map[string]string, len(r.Cells)),
	}
	copy(out.Columns, r.Columns)
	for k, v := range r.Cells {
		out.Cells[k] = v
	}
	if r.Meta != nil {
		meta := r.Meta.Clone()
		out.Meta = &meta
	}
	return out
}

// RowMeta carries the auxiliary metadata the fix engine attaches to a row.
type RowMeta struct {
	Fixes         FixRecord
	PriorityScore int // 0-100, recomputed on every fix pass
}

// Clone returns a deep copy of the metadata.
func (m RowMeta) Clone() RowMeta {
	return RowMeta{
		Fixes:         m.Fixes.Clone(),
		PriorityScore: m.PriorityScore,
	}
}
