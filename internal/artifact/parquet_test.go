package artifact

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWriteReadParquetRoundTrip(t *testing.T) {
	f := NewFrame(2)
	f.AddColumn(NewStringColumn("name", []string{"alice", "bob"}))
	intCol := NewIntColumn("amount", []int64{100, 200}, []bool{false, true})
	f.AddColumn(intCol)
	floatCol := NewFloatColumn("rate", []float64{1.5, 2.5}, []bool{false, false})
	f.AddColumn(floatCol)
	timeCol := NewTimeColumn("d", []time.Time{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), {}}, []bool{false, true})
	f.AddColumn(timeCol)

	path := filepath.Join(t.TempDir(), "out.parquet")
	if err := WriteParquet(path, f); err != nil {
		t.Fatalf("WriteParquet error: %v", err)
	}

	got, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet error: %v", err)
	}
	if got.NRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", got.NRows())
	}

	nameCol, ok := got.Column("name")
	if !ok || nameCol.Strings[0] != "alice" || nameCol.Strings[1] != "bob" {
		t.Errorf("unexpected name column: %+v", nameCol)
	}

	amountCol, ok := got.Column("amount")
	if !ok || amountCol.Ints[0] != 100 || !amountCol.Null[1] {
		t.Errorf("unexpected amount column: ints=%v null=%v", amountCol.Ints, amountCol.Null)
	}

	rateCol, ok := got.Column("rate")
	if !ok || rateCol.Floats[0] != 1.5 || rateCol.Floats[1] != 2.5 {
		t.Errorf("unexpected rate column: %v", rateCol.Floats)
	}

	dCol, ok := got.Column("d")
	if !ok || dCol.Null[1] {
		// second row's date cell was null at write time
	} else {
		t.Error("expected second row's date cell to remain null")
	}
	if !dCol.Times[0].Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected first row's date to round-trip, got %v", dCol.Times[0])
	}
}

func TestWriteParquetOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")

	first := NewFrame(1)
	first.AddColumn(NewStringColumn("v", []string{"first"}))
	if err := WriteParquet(path, first); err != nil {
		t.Fatalf("WriteParquet error: %v", err)
	}

	second := NewFrame(1)
	second.AddColumn(NewStringColumn("v", []string{"second"}))
	if err := WriteParquet(path, second); err != nil {
		t.Fatalf("WriteParquet error: %v", err)
	}

	got, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet error: %v", err)
	}
	col, _ := got.Column("v")
	if col.Strings[0] != "second" {
		t.Errorf("expected the second write to overwrite the first, got %q", col.Strings[0])
	}
}
