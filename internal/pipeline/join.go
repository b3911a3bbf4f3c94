package pipeline

import (
	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/model"
)

// suffixBaseII and suffixIntelica disambiguate column names that collide
// across the three frames being joined, matching the original store's
// merge suffix convention.
const (
	suffixBaseII   = "_baseii"
	suffixIntelica = "_intelica"
)

// Join combines the clean frame, the Calculate stage's derived columns, and
// the Interchange stage's per-row bindings into one artifact, positionally
// (every frame shares the clean frame's row order and count). On a column
// name collision the clean column takes the _baseii suffix (see
// JoinCleanCalculated) and the bindings column takes the _intelica suffix.
func Join(clean, calculated *artifact.Frame, bindings []model.InterchangeBinding) *artifact.Frame {
	stage := JoinCleanCalculated(clean, calculated)
	return joinTwo(stage, bindingsFrame(bindings), suffixIntelica)
}

// JoinCleanCalculated merges the clean frame with the Calculate stage's
// derived columns; this is also the row context the Interchange stage's
// rule engine reads from, before any binding has been computed. A clean
// column whose name also appears in calculated is renamed with the _baseii
// suffix; the calculated column keeps the plain name.
func JoinCleanCalculated(clean, calculated *artifact.Frame) *artifact.Frame {
	out := artifact.NewFrame(clean.NRows())
	for _, name := range clean.ColumnNames() {
		col := clean.MustColumn(name)
		if _, clash := calculated.Column(name); clash {
			renamed := *col
			renamed.Name = name + suffixBaseII
			col = &renamed
		}
		out.AddColumn(col)
	}
	for _, name := range calculated.ColumnNames() {
		out.AddColumn(calculated.MustColumn(name))
	}
	return out
}

func joinTwo(a, b *artifact.Frame, suffix string) *artifact.Frame {
	out := artifact.NewFrame(a.NRows())
	for _, name := range a.ColumnNames() {
		out.AddColumn(a.MustColumn(name))
	}
	for _, name := range b.ColumnNames() {
		col := b.MustColumn(name)
		out.AddColumn(renameIfCollision(out, name, col, suffix))
	}
	return out
}

func renameIfCollision(out *artifact.Frame, name string, col *artifact.Column, suffix string) *artifact.Column {
	if _, exists := out.Column(name); !exists {
		return col
	}
	renamed := *col
	renamed.Name = name + suffix
	return &renamed
}

// bindingsFrame flattens the per-row Interchange bindings into a Frame with
// the Join's column ordering for that stage.
func bindingsFrame(bindings []model.InterchangeBinding) *artifact.Frame {
	n := len(bindings)
	region := make([]string, n)
	intelicaID := make([]int64, n)
	intelicaNull := make([]bool, n)
	feeDescriptor := make([]string, n)
	feeCurrency := make([]string, n)
	feeVariable := make([]float64, n)
	feeFixed := make([]float64, n)
	feeMin := make([]float64, n)
	feeCap := make([]float64, n)
	zeroNull := make([]bool, n)

	for i, b := range bindings {
		region[i] = b.RegionCountryCode
		intelicaID[i] = b.IntelicaID
		intelicaNull[i] = b.IntelicaID == model.Unbound.IntelicaID
		feeDescriptor[i] = b.FeeDescriptor
		feeCurrency[i] = b.FeeCurrency
		feeVariable[i] = b.FeeVariable
		feeFixed[i] = b.FeeFixed
		feeMin[i] = b.FeeMin
		feeCap[i] = b.FeeCap
	}

	f := artifact.NewFrame(n)
	f.AddColumn(artifact.NewStringColumn("region_country_code", region))
	f.AddColumn(artifact.NewIntColumn("intelica_id", intelicaID, intelicaNull))
	f.AddColumn(artifact.NewStringColumn("fee_descriptor", feeDescriptor))
	f.AddColumn(artifact.NewStringColumn("fee_currency", feeCurrency))
	f.AddColumn(artifact.NewFloatColumn("fee_variable", feeVariable, zeroNull))
	f.AddColumn(artifact.NewFloatColumn("fee_fixed", feeFixed, zeroNull))
	f.AddColumn(artifact.NewFloatColumn("fee_min", feeMin, zeroNull))
	f.AddColumn(artifact.NewFloatColumn("fee_cap", feeCap, zeroNull))
	return f
}
