package pipeline

import (
	"fmt"

	"github.com/rawblock/visa-interchange/internal/artifact"
)

// Divergence describes one cell where two supposedly idempotent computations
// disagreed.
type Divergence struct {
	Column string
	Row    int
	Detail string
}

// VerifyIdempotent runs the full pure pipeline twice for clientID/fileID,
// from a freshly opened metadata store each time, and diffs the final
// joined artifact cell by cell. A clean pipeline run never has side effects
// that would make the second pass see different inputs, so any divergence
// here is a genuine determinism bug, per the batch contract's idempotence
// invariant.
func (r *Runner) VerifyIdempotent(clientID, fileID string) (bool, []Divergence, error) {
	log := r.Logger.Named("verify-idempotent")

	_, first, err := r.compute(clientID, fileID, log)
	if err != nil {
		return false, nil, err
	}
	_, second, err := r.compute(clientID, fileID, log)
	if err != nil {
		return false, nil, err
	}

	if first.rawOK != second.rawOK {
		return false, []Divergence{{Detail: "input-shape outcome differs between runs"}}, nil
	}
	if !first.rawOK {
		return true, nil, nil
	}

	div := diffFrames(first.joined, second.joined)
	return len(div) == 0, div, nil
}

// diffFrames compares two frames column by column, row by row, reporting
// every cell whose nullness or string value differs. A difference in column
// count, column order, or row count is reported as the single divergence
// and ends the comparison.
func diffFrames(a, b *artifact.Frame) []Divergence {
	var out []Divergence

	namesA, namesB := a.ColumnNames(), b.ColumnNames()
	if len(namesA) != len(namesB) {
		out = append(out, Divergence{Detail: fmt.Sprintf("column count differs: %d vs %d", len(namesA), len(namesB))})
		return out
	}
	for i, name := range namesA {
		if namesB[i] != name {
			out = append(out, Divergence{Detail: fmt.Sprintf("column order differs at position %d: %q vs %q", i, name, namesB[i])})
			return out
		}
	}

	if a.NRows() != b.NRows() {
		out = append(out, Divergence{Detail: fmt.Sprintf("row count differs: %d vs %d", a.NRows(), b.NRows())})
		return out
	}

	for _, name := range namesA {
		colA := a.MustColumn(name)
		colB := b.MustColumn(name)
		for row := 0; row < a.NRows(); row++ {
			va, nullA := colA.String(row)
			vb, nullB := colB.String(row)
			if nullA != nullB || va != vb {
				out = append(out, Divergence{
					Column: name,
					Row:    row,
					Detail: fmt.Sprintf("%q (null=%v) vs %q (null=%v)", va, nullA, vb, nullB),
				})
			}
		}
	}
	return out
}
