// Package derive computes the enrichment columns of §4.5: ARDEF-projected
// attributes, BIN slices, coalesced columns, classification truth tables,
// jurisdiction, and the remaining miscellaneous derived attributes. Each
// family is one file, mirroring the teacher's one-signal-family-per-file
// layout; every derivation is a pure function of (Context, row).
package derive

import (
	"time"

	"github.com/rawblock/visa-interchange/internal/ardef"
	"github.com/rawblock/visa-interchange/internal/binset"
	"github.com/rawblock/visa-interchange/internal/model"
)

// Context bundles the three shared lookup structures every derivation reads:
// the file's client record, its processing-date metadata, and the resolved
// ARDEF interval index. It is built once per Calculate invocation and never
// mutated, so it is safe to share across parallelized per-row derivation.
type Context struct {
	Client         model.Client
	FileControl    model.FileControl
	Countries      map[string]model.Country
	Currencies     map[string]model.Currency
	ARDEF          *ardef.Index
	IssuerBINs6    *binset.Set
	IssuerBINs8    *binset.Set
	AcquirerBINs   *binset.Set
}

// NewContext builds a derivation Context, indexing the client's comma-
// separated BIN lists into membership sets.
func NewContext(client model.Client, fc model.FileControl, countries map[string]model.Country,
	currencies map[string]model.Currency, idx *ardef.Index) Context {
	return Context{
		Client:       client,
		FileControl:  fc,
		Countries:    countries,
		Currencies:   currencies,
		ARDEF:        idx,
		IssuerBINs6:  binset.New(client.IssuingBINs6Digit),
		IssuerBINs8:  binset.New(client.IssuingBINs8Digit),
		AcquirerBINs: binset.New(client.AcquiringBINs),
	}
}

// ProcessingDate is the file's processing date, used by timeliness and
// every ARDEF-validity and rule-validity comparison.
func (c Context) ProcessingDate() time.Time { return c.FileControl.FileProcessingDate }

// RegionOf resolves a country code to its Visa region code, or "" if unknown.
func (c Context) RegionOf(countryCode string) string {
	if country, ok := c.Countries[countryCode]; ok {
		return country.VisaRegionCode
	}
	return ""
}

// normalizePAN replaces every asterisk in a masked PAN with '0', per the
// truncation convention used for BIN slicing and ARDEF binding.
func normalizePAN(pan string) string {
	out := make([]byte, len(pan))
	for i := 0; i < len(pan); i++ {
		if pan[i] == '*' {
			out[i] = '0'
		} else {
			out[i] = pan[i]
		}
	}
	return string(out)
}
