package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/model"
)

// overpunchDigit maps the trailing zoned-decimal character to its digit.
// The mapping is a sign-less character substitution, ported verbatim from
// the original cleaner: overpunch characters never flip the value negative.
var overpunchDigit = map[byte]byte{
	'{': '0', 'A': '1', 'B': '2', 'C': '3', 'D': '4',
	'E': '5', 'F': '6', 'G': '7', 'H': '8', 'I': '9',
	'}': '0', 'J': '1', 'K': '2', 'L': '3', 'M': '4',
	'N': '5', 'O': '6', 'P': '7', 'Q': '8', 'R': '9',
}

// Clean runs the field cleaner: coerces every extracted string column to
// its declared semantic type. Coercion failures null the cell and continue;
// only a configuration problem (unknown column type, non-positive scale,
// missing or unknown date format) is fatal. A column with no field
// definition passes through unchanged.
func Clean(frame *artifact.Frame, defs []model.FieldDefinition, processingDate time.Time) (*artifact.Frame, error) {
	byName := make(map[string]model.FieldDefinition, len(defs))
	for _, fd := range defs {
		byName[fd.ColumnName] = fd
	}

	out := artifact.NewFrame(frame.NRows())
	for _, name := range frame.ColumnNames() {
		fd, ok := byName[name]
		if !ok {
			// No declared type: pass the raw string column through unchanged.
			out.AddColumn(frame.MustColumn(name))
			continue
		}
		src := frame.MustColumn(name)

		var col *artifact.Column
		var err error
		switch fd.ColumnType {
		case "str":
			col = cleanStr(name, src)
		case "int":
			col = cleanInt(name, src)
		case "float":
			col, err = cleanFloat(name, src, fd.FloatDecimals)
		case "date":
			col, err = cleanDate(name, src, fd.DateFormat, processingDate)
		default:
			err = &fieldError{fd: fd, msg: "unknown column_type " + fd.ColumnType}
		}
		if err != nil {
			return nil, Wrap("clean", KindConfiguration, err)
		}
		out.AddColumn(col)
	}
	return out, nil
}

func cleanStr(name string, src *artifact.Column) *artifact.Column {
	n := src.Len()
	vals := make([]string, n)
	null := make([]bool, n)
	for i := 0; i < n; i++ {
		v, isNull := src.String(i)
		if isNull {
			null[i] = true
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" {
			v = " "
		}
		vals[i] = v
	}
	c := artifact.NewStringColumn(name, vals)
	c.Null = null
	return c
}

func cleanInt(name string, src *artifact.Column) *artifact.Column {
	n := src.Len()
	vals := make([]int64, n)
	null := make([]bool, n)
	for i := 0; i < n; i++ {
		v, isNull := src.String(i)
		if isNull {
			null[i] = true
			continue
		}
		v = strings.TrimSpace(v)
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			null[i] = true
			continue
		}
		vals[i] = parsed
	}
	return artifact.NewIntColumn(name, vals, null)
}

func cleanFloat(name string, src *artifact.Column, scale int) (*artifact.Column, error) {
	if scale <= 0 {
		return nil, &configError{msg: "column " + name + ": float_decimals must be positive, got " + strconv.Itoa(scale)}
	}

	n := src.Len()
	vals := make([]float64, n)
	null := make([]bool, n)
	divisor := 1.0
	for i := 0; i < scale; i++ {
		divisor *= 10
	}

	for i := 0; i < n; i++ {
		v, isNull := src.String(i)
		if isNull {
			null[i] = true
			continue
		}
		v = strings.TrimSpace(v)
		digits, ok := applyOverpunch(v)
		if !ok {
			null[i] = true
			continue
		}
		parsed, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			null[i] = true
			continue
		}
		vals[i] = float64(parsed) / divisor
	}
	return artifact.NewFloatColumn(name, vals, null), nil
}

// applyOverpunch transforms the trailing zoned-decimal character of v into
// its mapped digit, applied only to the last character (the corrected
// scope per spec.md §9; the source's global regex replace is a bug). The
// substitution never changes the value's sign, matching the source's plain
// character replace.
func applyOverpunch(v string) (digits string, ok bool) {
	if v == "" {
		return "", false
	}
	last := v[len(v)-1]
	if last >= '0' && last <= '9' {
		return v, true
	}
	mapped, known := overpunchDigit[last]
	if !known {
		return "", false
	}
	return v[:len(v)-1] + string(mapped), true
}

func cleanDate(name string, src *artifact.Column, format string, processingDate time.Time) (*artifact.Column, error) {
	if format == "" {
		return nil, &configError{msg: "column " + name + ": missing date_format"}
	}
	if !strings.HasPrefix(format, "%") && format != "!MMDD" && format != "!YDDD" && format != "!YYYYDDD" {
		return nil, &configError{msg: "column " + name + ": unsupported date_format " + format}
	}

	n := src.Len()
	vals := make([]time.Time, n)
	null := make([]bool, n)
	for i := 0; i < n; i++ {
		v, isNull := src.String(i)
		if isNull {
			null[i] = true
			continue
		}
		v = strings.TrimSpace(v)
		t, err := parseDate(v, format, processingDate)
		if err != nil {
			null[i] = true
			continue
		}
		vals[i] = t
	}
	return artifact.NewTimeColumn(name, vals, null), nil
}

// parseDate dispatches on the four date-format conventions §4.3 defines.
func parseDate(v, format string, processingDate time.Time) (time.Time, error) {
	switch {
	case strings.HasPrefix(format, "%"):
		return time.Parse(translateStrftime(format), v)

	case format == "!MMDD":
		year := processingDate.Year()
		candidate, err := time.Parse("20060102", strconv.Itoa(year)+v)
		if err != nil {
			return time.Time{}, err
		}
		if candidate.After(processingDate) {
			candidate = candidate.AddDate(-1, 0, 0)
		}
		return candidate, nil

	case format == "!YDDD":
		decade := strconv.Itoa(processingDate.Year())
		decadeDigit := decade[len(decade)-2 : len(decade)-1]
		return parseYDDD(decadeDigit, v, processingDate)

	case format == "!YYYYDDD":
		if len(v) < 5 {
			return time.Time{}, &fieldError{msg: "!YYYYDDD value too short: " + v}
		}
		year, err := strconv.Atoi(v[:4])
		if err != nil {
			return time.Time{}, err
		}
		doy, err := strconv.Atoi(v[4:])
		if err != nil {
			return time.Time{}, err
		}
		if doy < 1 || doy > 366 {
			return time.Time{}, &fieldError{msg: "day-of-year out of range: " + v}
		}
		return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1), nil

	default:
		return time.Time{}, &configError{msg: "unsupported date_format " + format}
	}
}

// parseYDDD implements "!YDDD": prepend the processing date's decade digit,
// parse as YYjjj (2-digit year + 3-digit day-of-year), subtract ten years if
// the result lands after the processing date.
func parseYDDD(decadeDigit, v string, processingDate time.Time) (time.Time, error) {
	full := decadeDigit + v
	if len(full) != 5 {
		return time.Time{}, &fieldError{msg: "!YDDD value has wrong length: " + v}
	}
	yy, err := strconv.Atoi(full[:2])
	if err != nil {
		return time.Time{}, err
	}
	doy, err := strconv.Atoi(full[2:])
	if err != nil {
		return time.Time{}, err
	}
	if doy < 1 || doy > 366 {
		return time.Time{}, &fieldError{msg: "day-of-year out of range: " + v}
	}
	centuryBase := (processingDate.Year() / 100) * 100
	year := centuryBase + yy
	candidate := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1)
	if candidate.After(processingDate) {
		candidate = candidate.AddDate(-10, 0, 0)
	}
	return candidate, nil
}

// translateStrftime converts a small set of strftime-style directives to a
// Go reference-time layout. Field definitions only use the directives the
// record family's dates actually need (%Y %y %m %d), so this covers that
// set rather than the full strftime grammar.
func translateStrftime(format string) string {
	replacer := strings.NewReplacer(
		"%Y", "2006",
		"%y", "06",
		"%m", "01",
		"%d", "02",
		"%H", "15",
		"%M", "04",
		"%S", "05",
	)
	return replacer.Replace(format)
}

type configError struct{ msg string }

func (e *configError) Error() string { return e.msg }
