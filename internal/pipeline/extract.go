package pipeline

import (
	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/model"
)

// Extract runs the field extractor: for every field definition, slices the
// named sub-record column by position/length, honoring the definition's
// secondary identifier restriction, and publishes one string column per
// field.
func Extract(frame *artifact.Frame, defs []model.FieldDefinition) (*artifact.Frame, error) {
	nrows := frame.NRows()
	out := artifact.NewFrame(nrows)

	for _, fd := range defs {
		src, ok := frame.Column(fd.TCSN)
		if !ok {
			return nil, Wrap("extract", KindConfiguration,
				fieldDefError(fd, "no such sub-record column"))
		}

		values := make([]string, nrows)
		for row := 0; row < nrows; row++ {
			line, _ := src.String(row)
			if !matchesSecondaryIdentifier(fd, line) {
				continue // leave values[row] == "" to preserve row alignment
			}
			values[row] = sliceField(line, fd.Position, fd.Length)
		}
		out.AddColumn(artifact.NewStringColumn(fd.ColumnName, values))
	}

	return out, nil
}

func matchesSecondaryIdentifier(fd model.FieldDefinition, line string) bool {
	if !fd.HasSecondaryIdentifier() {
		return true
	}
	start := fd.SecondaryIdentifierPos - 1
	end := start + fd.SecondaryIdentifierLen
	if start < 0 || end > len(line) {
		return false
	}
	return line[start:end] == fd.SecondaryIdentifier
}

// sliceField returns line[position-1 : position-1+length), clamped to the
// line's actual bounds; a line shorter than the declared window contributes
// only its available characters (field definitions are trusted to match the
// declared record layout, but defensive clamping keeps a short/blank
// sub-record cell from panicking).
func sliceField(line string, position, length int) string {
	start := position - 1
	if start < 0 || start >= len(line) {
		return ""
	}
	end := start + length
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}

func fieldDefError(fd model.FieldDefinition, msg string) error {
	return &fieldError{fd: fd, msg: msg}
}

type fieldError struct {
	fd  model.FieldDefinition
	msg string
}

func (e *fieldError) Error() string {
	return "field " + e.fd.ColumnName + ": " + e.msg
}
