package derive

import "strings"

// businessTransactionMCCSet is the merchant-category-code set
// business_transaction_type's first two conditions dispatch on, ported
// verbatim from the original calculator's truth table.
var businessTransactionMCCSet = map[string]bool{"4829": true, "6051": true, "7995": true}

// draftGroup1, draftGroup2, draftGroup3 are the three draft_code sets the
// business_transaction_type conditions gate on, ported verbatim.
var (
	draftGroup1 = map[string]bool{"05": true, "15": true, "25": true, "35": true}
	draftGroup2 = map[string]bool{"06": true, "16": true, "26": true, "36": true}
	draftGroup3 = map[string]bool{"07": true, "17": true, "27": true, "37": true}
)

var reversalDraftCodes = map[string]bool{
	"25": true, "26": true, "27": true, "35": true, "36": true, "37": true,
}

var invalidAuthTrailers = map[string]bool{
	" ": true, "0000": true, "00000": true, "0000n": true, "0000p": true, "0000y": true,
}

// ComputeAuthorizationCodeValid ports the original calculator's exact truth
// table: an authorization code ending in "x", or whose last 5 characters are
// one of the blank/zero placeholder forms, is invalid; everything else valid.
func ComputeAuthorizationCodeValid(authorizationCode string) string {
	ac := authorizationCode
	if len(ac) > 0 && strings.EqualFold(ac[len(ac)-1:], "x") {
		return "INVALID"
	}
	trailer := ac
	if len(ac) > 5 {
		trailer = ac[len(ac)-5:]
	}
	if invalidAuthTrailers[strings.ToLower(trailer)] {
		return "INVALID"
	}
	return "VALID"
}

// ComputeReversalIndicator ports the original calculator's draft_code
// truth table verbatim.
func ComputeReversalIndicator(draftCode string) int64 {
	if reversalDraftCodes[draftCode] {
		return 1
	}
	return 0
}

// BusinessTransactionTypeInputs bundles the columns the original
// calculator's np.select conditions dispatch on.
type BusinessTransactionTypeInputs struct {
	DraftCode            string
	MerchantCategoryCode string
	UsageCode            string
	SpecialConditionInd  string
	DraftCodeQualifier0  string
}

// ComputeBusinessTransactionType ports the original calculator's seven
// np.select conditions verbatim, in priority order; the first matching
// condition wins, default 255. Conditions 3-5 all gate on draftGroup2 and
// usage code "1", with condition 3 the weakest test: since np.select takes
// the first true condition in list order, conditions 4 and 5's extra
// special-condition/qualifier tests can never fire ahead of condition 3's
// plain usage-code match. That is carried over verbatim from the original.
func ComputeBusinessTransactionType(in BusinessTransactionTypeInputs) int64 {
	switch {
	case draftGroup1[in.DraftCode] && !businessTransactionMCCSet[in.MerchantCategoryCode]:
		return 1
	case draftGroup1[in.DraftCode] && businessTransactionMCCSet[in.MerchantCategoryCode]:
		return 3
	case draftGroup2[in.DraftCode] && in.UsageCode == "1":
		return 19
	case draftGroup2[in.DraftCode] && in.UsageCode == "1" &&
		(in.SpecialConditionInd == "7" || in.SpecialConditionInd == "8"):
		return 20
	case draftGroup2[in.DraftCode] && in.UsageCode == "1" && in.DraftCodeQualifier0 == "2":
		return 25
	case draftGroup3[in.DraftCode] && in.MerchantCategoryCode == "6010":
		return 21
	case draftGroup3[in.DraftCode] && in.MerchantCategoryCode == "6011":
		return 22
	default:
		return 255
	}
}
