package derive

// Jurisdiction classification values.
const (
	JurisdictionOnUs          = "on-us"
	JurisdictionOffUs         = "off-us"
	JurisdictionIntraregional = "intraregional"
	JurisdictionInterregional = "interregional"
)

// JurisdictionInputs bundles the columns the four-way classifier needs.
type JurisdictionInputs struct {
	MerchantCountry string
	IssuerCountry   string // from the bound ARDEF record
	IssuerBIN8      string
	AcquirerBIN     string
}

// ComputeJurisdiction implements the four-way classifier: on-us requires
// same country AND the transaction's issuer/acquirer-side BIN present in
// the client's own BIN list; otherwise off-us (same country), intraregional
// (same region), or interregional.
func (c Context) ComputeJurisdiction(in JurisdictionInputs) string {
	merchantRegion := c.RegionOf(in.MerchantCountry)
	issuerRegion := c.RegionOf(in.IssuerCountry)

	sameCountry := in.MerchantCountry != "" && in.MerchantCountry == in.IssuerCountry

	if sameCountry {
		onUs := c.IssuerBINs8.Contains(in.IssuerBIN8) ||
			(len(in.IssuerBIN8) >= 6 && c.IssuerBINs6.Contains(in.IssuerBIN8[:6])) ||
			c.AcquirerBINs.Contains(in.AcquirerBIN)
		if onUs {
			return JurisdictionOnUs
		}
		return JurisdictionOffUs
	}

	if merchantRegion != "" && merchantRegion == issuerRegion {
		return JurisdictionIntraregional
	}
	return JurisdictionInterregional
}

// ComputeJurisdictionAssigned returns the jurisdiction code the rule engine
// matches rules against: merchant country for same-country jurisdictions,
// issuer region for intraregional, and the literal "9" for interregional.
func (c Context) ComputeJurisdictionAssigned(jurisdiction string, in JurisdictionInputs) string {
	switch jurisdiction {
	case JurisdictionOnUs, JurisdictionOffUs:
		return in.MerchantCountry
	case JurisdictionIntraregional:
		return c.RegionOf(in.IssuerCountry)
	default:
		return "9"
	}
}
