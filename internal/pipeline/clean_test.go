package pipeline

import (
	"testing"
	"time"

	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/model"
)

func stringFrame(name string, values []string) *artifact.Frame {
	f := artifact.NewFrame(len(values))
	f.AddColumn(artifact.NewStringColumn(name, values))
	return f
}

func TestApplyOverpunchMapsTrailerToDigit(t *testing.T) {
	cases := []struct {
		in     string
		digits string
	}{
		{"123{", "1230"},
		{"123A", "1231"},
		{"123I", "1239"},
		{"1230", "1230"},
		{"123}", "1230"},
		{"123J", "1231"},
		{"123R", "1239"},
	}
	for _, c := range cases {
		digits, ok := applyOverpunch(c.in)
		if !ok || digits != c.digits {
			t.Errorf("applyOverpunch(%q) = (%q, %v), want (%q, true)", c.in, digits, ok, c.digits)
		}
	}
}

func TestApplyOverpunchUnknownTrailerAndEmpty(t *testing.T) {
	if _, ok := applyOverpunch(""); ok {
		t.Error("expected empty string to fail overpunch decoding")
	}
	if _, ok := applyOverpunch("12!"); ok {
		t.Error("expected an unrecognized trailing character to fail overpunch decoding")
	}
}

func TestApplyOverpunchOnlyAffectsLastCharacter(t *testing.T) {
	// "12R" ends in R (digit 9); the leading digits are untouched, not
	// reinterpreted, even though R also resembles a hex-like digit elsewhere.
	// The substitution never changes sign, so "12R" decodes to "129", not -129.
	digits, ok := applyOverpunch("12R")
	if !ok || digits != "129" {
		t.Errorf("applyOverpunch(\"12R\") = (%q, %v), want (\"129\", true)", digits, ok)
	}
}

func TestCleanFloatAppliesScaleAndOverpunch(t *testing.T) {
	src := stringFrame("amount", []string{"12345A", "100"})
	out, err := cleanFloat("amount", src.MustColumn("amount"), 2)
	if err != nil {
		t.Fatalf("cleanFloat error: %v", err)
	}
	if out.Floats[0] != 123.46 {
		t.Errorf("expected 12345A with scale 2 to decode to 123.46, got %v", out.Floats[0])
	}
	if out.Floats[1] != 1.00 {
		t.Errorf("expected unsigned 100 with scale 2 to decode to 1.00, got %v", out.Floats[1])
	}
}

func TestCleanFloatOverpunchTrailerStaysPositive(t *testing.T) {
	src := stringFrame("amount", []string{"12}", "12R"})
	out, err := cleanFloat("amount", src.MustColumn("amount"), 2)
	if err != nil {
		t.Fatalf("cleanFloat error: %v", err)
	}
	if out.Floats[0] != 1.20 {
		t.Errorf("expected \"12}\" with scale 2 to decode to 1.20, got %v", out.Floats[0])
	}
	if out.Floats[1] != 1.29 {
		t.Errorf("expected \"12R\" with scale 2 to decode to 1.29, got %v", out.Floats[1])
	}
}

func TestCleanFloatNonPositiveScaleIsFatal(t *testing.T) {
	src := stringFrame("amount", []string{"100"})
	if _, err := cleanFloat("amount", src.MustColumn("amount"), 0); err == nil {
		t.Fatal("expected non-positive float_decimals to be a fatal configuration error")
	}
}

func TestCleanFloatBadDigitsNullsCell(t *testing.T) {
	src := stringFrame("amount", []string{"1X2Y"})
	out, err := cleanFloat("amount", src.MustColumn("amount"), 2)
	if err != nil {
		t.Fatalf("cleanFloat error: %v", err)
	}
	if !out.Null[0] {
		t.Error("expected an unparseable value to null the cell, not error the whole column")
	}
}

func TestCleanIntTrimsAndNullsOnParseFailure(t *testing.T) {
	src := stringFrame("n", []string{" 42 ", "abc"})
	out := cleanInt("n", src.MustColumn("n"))
	if out.Null[0] || out.Ints[0] != 42 {
		t.Errorf("expected trimmed \" 42 \" to parse to 42, got %v null=%v", out.Ints[0], out.Null[0])
	}
	if !out.Null[1] {
		t.Error("expected unparseable int cell to be null")
	}
}

func TestCleanStrBlankBecomesSingleSpace(t *testing.T) {
	src := stringFrame("s", []string{"   ", "x"})
	out := cleanStr("s", src.MustColumn("s"))
	if out.Strings[0] != " " {
		t.Errorf("expected all-blank string cell to normalize to a single space, got %q", out.Strings[0])
	}
	if out.Strings[1] != "x" {
		t.Errorf("expected non-blank string cell trimmed, got %q", out.Strings[1])
	}
}

func TestParseDateMMDD(t *testing.T) {
	processing := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	got, err := parseDate("0301", "!MMDD", processing)
	if err != nil {
		t.Fatalf("parseDate error: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate(0301) = %v, want %v", got, want)
	}
}

func TestParseDateMMDDRollsBackAYearWhenAfterProcessingDate(t *testing.T) {
	processing := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	got, err := parseDate("1231", "!MMDD", processing)
	if err != nil {
		t.Fatalf("parseDate error: %v", err)
	}
	want := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate(1231) with processing date 2026-01-05 = %v, want %v (prior year)", got, want)
	}
}

func TestParseDateYDDD(t *testing.T) {
	processing := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err := parseDate("6032", "!YDDD", processing)
	if err != nil {
		t.Fatalf("parseDate error: %v", err)
	}
	want := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate(6032) = %v, want %v", got, want)
	}
}

func TestParseDateYYYYDDD(t *testing.T) {
	processing := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err := parseDate("2026060", "!YYYYDDD", processing)
	if err != nil {
		t.Fatalf("parseDate error: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate(2026060) = %v, want %v", got, want)
	}
}

func TestParseDateYYYYDDDTooShort(t *testing.T) {
	if _, err := parseDate("203", "!YYYYDDD", time.Now().UTC()); err == nil {
		t.Fatal("expected an error for a !YYYYDDD value shorter than 5 characters")
	}
}

func TestParseDateStrftime(t *testing.T) {
	got, err := parseDate("20260301", "%Y%m%d", time.Time{})
	if err != nil {
		t.Fatalf("parseDate error: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate(20260301, %%Y%%m%%d) = %v, want %v", got, want)
	}
}

func TestParseDateUnsupportedFormat(t *testing.T) {
	if _, err := parseDate("x", "!UNKNOWN", time.Time{}); err == nil {
		t.Fatal("expected an unsupported date_format to error")
	}
}

func TestCleanUnknownColumnTypeIsFatal(t *testing.T) {
	frame := stringFrame("weird", []string{"1"})
	defs := []model.FieldDefinition{{ColumnName: "weird", ColumnType: "blob"}}
	if _, err := Clean(frame, defs, time.Now().UTC()); err == nil {
		t.Fatal("expected an unknown column_type to be a fatal configuration error")
	}
}

func TestCleanPassesThroughUndeclaredColumns(t *testing.T) {
	frame := stringFrame("mystery", []string{"raw"})
	out, err := Clean(frame, nil, time.Now().UTC())
	if err != nil {
		t.Fatalf("Clean error: %v", err)
	}
	col, ok := out.Column("mystery")
	if !ok || col.Strings[0] != "raw" {
		t.Error("expected a column with no field definition to pass through unchanged")
	}
}
