package pipeline

// RecordFamily parameterizes the framer/extractor pair so BASE II drafts,
// SMS, and VSS share the same stage code and differ only by these tables,
// per the design note that family variants are new rows, not new code paths.
type RecordFamily struct {
	// Name identifies the family for metadata lookups (type_record prefix)
	// and logging, e.g. "baseii", "vss_110".
	Name string
	// TCAllow is the transaction-code allow-list, matched against the raw
	// line's leading 2 characters.
	TCAllow []string
	// TCSNAllow is the sub-record-sequence allow-list, matched against the
	// character at offset 3.
	TCSNAllow []string
	// VSSType, when non-empty, further restricts VSS lines to the record
	// whose type code (offset 60:63) equals this value with the mandated
	// 2-space suffix (offset 63:65).
	VSSType string
}

const (
	vssPosStart    = 60
	vssPosEnd      = 63
	vssSuffixStart = 63
	vssSuffixEnd   = 65
	vssSuffixValue = "  "
)

// BaseIIDrafts is the canonical, fully implemented record family.
var BaseIIDrafts = RecordFamily{
	Name:      "baseii",
	TCAllow:   []string{"05", "06", "07", "25", "26", "27"},
	TCSNAllow: []string{"0", "1", "2", "3", "4", "5", "6", "7"},
}

// VSSTypes enumerates the VSS settlement-report record types.
var VSSTypes = []string{"110", "120", "130", "140"}

// VSSFamily builds the record family descriptor for one VSS report type.
func VSSFamily(vssType string) RecordFamily {
	return RecordFamily{
		Name:      "vss_" + vssType,
		TCAllow:   []string{"46"},
		TCSNAllow: []string{"0", "1"},
		VSSType:   vssType,
	}
}
