package derive

// CoalescingSpec names the ranked list of sub-record-suffixed source
// columns to coalesce into one derived column, first non-blank wins.
type CoalescingSpec struct {
	Name    string
	Sources []string
}

// Coalesced is the standard set of coalescing derivations named in §4.5.
// Each target column has variants across the draft's optional sub-records
// (e.g. business_application_id_1 .. business_application_id_7); callers
// supply the concrete ranked source list per field-definition metadata.
var Coalesced = []CoalescingSpec{
	{Name: "business_application_id"},
	{Name: "business_format_code"},
	{Name: "message_reason_code"},
	{Name: "network_identification_code"},
	{Name: "type_of_purchase"},
}

// ComputeCoalesced returns the first non-blank value across sources, in
// rank order.
func ComputeCoalesced(row Row, sources []string) string {
	return row.FirstNonBlank(sources...)
}
