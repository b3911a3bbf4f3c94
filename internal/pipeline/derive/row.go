package derive

import (
	"strconv"
	"time"

	"github.com/rawblock/visa-interchange/internal/artifact"
)

// Row is a read-only view of one row of a clean frame, by column name.
type Row struct {
	frame *artifact.Frame
	index int
}

// NewRow builds a Row view over frame at the given row index.
func NewRow(frame *artifact.Frame, index int) Row {
	return Row{frame: frame, index: index}
}

// Str returns column name's value as a string, or "" if absent or null.
func (r Row) Str(name string) string {
	col, ok := r.frame.Column(name)
	if !ok {
		return ""
	}
	v, isNull := col.String(r.index)
	if isNull {
		return ""
	}
	return v
}

// Int returns column name's value as an int64, or (0, false) if absent,
// null, or not an int column.
func (r Row) Int(name string) (int64, bool) {
	col, ok := r.frame.Column(name)
	if !ok || col.Type != artifact.CellInt || col.Null[r.index] {
		return 0, false
	}
	return col.Ints[r.index], true
}

// Float returns column name's value as a float64, or (0, false) if absent,
// null, or not a float column.
func (r Row) Float(name string) (float64, bool) {
	col, ok := r.frame.Column(name)
	if !ok || col.Type != artifact.CellFloat || col.Null[r.index] {
		return 0, false
	}
	return col.Floats[r.index], true
}

// Time returns column name's value as a time.Time, or (zero, false) if
// absent, null, or not a date column.
func (r Row) Time(name string) (time.Time, bool) {
	col, ok := r.frame.Column(name)
	if !ok || col.Type != artifact.CellTime || col.Null[r.index] {
		return time.Time{}, false
	}
	return col.Times[r.index], true
}

// FirstNonBlank returns the first non-blank string value among names, in
// order, or "" if every candidate is blank. Used by the coalescing family.
func (r Row) FirstNonBlank(names ...string) string {
	for _, n := range names {
		if v := r.Str(n); v != "" && v != " " {
			return v
		}
	}
	return ""
}

// PAN9 returns the integer value of the first 9 digits of the row's PAN
// column, with asterisks normalized to zero, or (0, false) if absent/unparseable.
func (r Row) PAN9(panColumn string) (int64, bool) {
	pan := normalizePAN(r.Str(panColumn))
	if len(pan) < 9 {
		return 0, false
	}
	v, err := strconv.ParseInt(pan[:9], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
