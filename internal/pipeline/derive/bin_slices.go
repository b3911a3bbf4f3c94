package derive

// BINSlices holds the two BIN substrings used by the jurisdiction on-us
// check: the issuer-side 8-digit BIN (from the PAN) and the acquirer-side
// 6-digit BIN (from the retrieval reference number).
type BINSlices struct {
	IssuerBIN8  string
	AcquirerBIN string
}

// ComputeBINSlices slices the issuer BIN from the (asterisk-normalized) PAN
// and the acquirer BIN from the retrieval reference number.
func ComputeBINSlices(row Row, panColumn, retrievalRefColumn string) BINSlices {
	pan := normalizePAN(row.Str(panColumn))
	rrn := normalizePAN(row.Str(retrievalRefColumn))

	var issuer8 string
	if len(pan) >= 8 {
		issuer8 = pan[:8]
	}
	var acquirer6 string
	if len(rrn) >= 6 {
		acquirer6 = rrn[:6]
	}

	return BINSlices{IssuerBIN8: issuer8, AcquirerBIN: acquirer6}
}
