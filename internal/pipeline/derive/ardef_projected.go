package derive

import "github.com/rawblock/visa-interchange/internal/model"

// ARDEFProjected is the set of columns projected directly from a
// transaction's bound ARDEF record: a no-match binds the sentinel [0,0]
// record, whose fields are all zero-valued, so these projections come out
// null for unmatched transactions.
type ARDEFProjected struct {
	FundingSource       string
	IssuerCountry       string
	IssuerRegion        string
	ProductID           string
	ProductSubtype      string
	ARDEFCountry        string
	B2BProgramID        string
	FastFunds           string
	NNSSIndicator       string
	TechnologyIndicator string
	TravelIndicator     string
	Matched             bool
}

// BoundARDEF resolves the transaction's 9-digit PAN truncation to its ARDEF
// interval and returns the matched record plus whether a real (non-sentinel)
// interval was found.
func (c Context) BoundARDEF(row Row, panColumn string) (model.ARDEFRecord, bool) {
	pan9, ok := row.PAN9(panColumn)
	if !ok {
		return model.SentinelARDEF, false
	}
	rec := c.ARDEF.Lookup(pan9)
	matched := rec.LowKey != 0 || rec.TableKey != 0
	return rec, matched
}

// ComputeARDEFProjected projects the bound ARDEF record's domain columns.
func ComputeARDEFProjected(c Context, row Row, panColumn string) ARDEFProjected {
	rec, matched := c.BoundARDEF(row, panColumn)
	return ARDEFProjected{
		FundingSource:       rec.FundingSource,
		IssuerCountry:       rec.Country,
		IssuerRegion:        c.RegionOf(rec.Country),
		ProductID:           rec.ProductID,
		ProductSubtype:      rec.ProductSubtype,
		ARDEFCountry:        rec.Country,
		B2BProgramID:        rec.B2BProgramID,
		FastFunds:           rec.FastFunds,
		NNSSIndicator:       rec.NNSSIndicator,
		TechnologyIndicator: rec.TechnologyIndicator,
		TravelIndicator:     rec.TravelIndicator,
		Matched:             matched,
	}
}
