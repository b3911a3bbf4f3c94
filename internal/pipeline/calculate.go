package pipeline

import (
	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/pipeline/derive"
)

// BASE II draft column-name contract the Calculate stage's derivations read.
// These are visa_fields.column_name values the metadata store's field
// definitions are expected to publish for the draft record family.
const (
	ColPAN                      = "account_number"
	ColRetrievalReferenceNumber = "retrieval_reference_number"
	ColMerchantCountryCode      = "merchant_country_code"
	ColDraftCode                = "draft_code"
	ColPurchaseDate             = "purchase_date"
	ColCentralProcessingDate    = "central_processing_date"
	ColAuthorizationCode        = "authorization_code"
	ColMerchantCategoryCode     = "merchant_category_code"
	ColUsageCode                = "usage_code"
	ColSpecialConditionIndicator = "special_condition_indicator"
	ColDraftCodeQualifier0      = "draft_code_qualifier_0"
	ColSourceCurrencyCode       = "source_currency_code"
)

// surchargeColumns lists the sub-record-suffixed surcharge amount variants
// the Calculate stage maxes over.
var surchargeColumns = []string{
	"surcharge_amount_1", "surcharge_amount_2", "surcharge_amount_3",
	"surcharge_amount_4", "surcharge_amount_5", "surcharge_amount_6", "surcharge_amount_7",
}

var businessApplicationIDSources = []string{
	"business_application_id_0", "business_application_id_1", "business_application_id_2",
}
var businessFormatCodeSources = []string{"business_format_code_0", "business_format_code_1"}
var messageReasonCodeSources = []string{"message_reason_code_0", "message_reason_code_1"}
var networkIDSources = []string{"network_identification_code_0", "network_identification_code_1"}
var typeOfPurchaseSources = []string{"type_of_purchase_0", "type_of_purchase_1"}

// Calculate runs the derived-attribute computation stage: every column in
// §4.5's families, derived row by row from the clean frame and the shared
// Context.
func Calculate(ctx derive.Context, clean *artifact.Frame) *artifact.Frame {
	n := clean.NRows()
	out := artifact.NewFrame(n)

	ardefProjected := make([]derive.ARDEFProjected, n)
	issuerBIN8 := make([]string, n)
	acquirerBIN := make([]string, n)
	jurisdiction := make([]string, n)
	jurisdictionAssigned := make([]string, n)
	jurisdictionAssignedNull := make([]bool, n)
	authValid := make([]string, n)
	bizTxnType := make([]int64, n)
	reversalInd := make([]int64, n)
	timeliness := make([]int64, n)
	timelinessNull := make([]bool, n)
	surcharge := make([]float64, n)
	sourceCcyAlpha := make([]string, n)
	bizAppID := make([]string, n)
	bizFormatCode := make([]string, n)
	msgReasonCode := make([]string, n)
	networkID := make([]string, n)
	typeOfPurchase := make([]string, n)

	for i := 0; i < n; i++ {
		row := derive.NewRow(clean, i)

		proj := derive.ComputeARDEFProjected(ctx, row, ColPAN)
		ardefProjected[i] = proj

		bins := derive.ComputeBINSlices(row, ColPAN, ColRetrievalReferenceNumber)
		issuerBIN8[i] = bins.IssuerBIN8
		acquirerBIN[i] = bins.AcquirerBIN

		jin := derive.JurisdictionInputs{
			MerchantCountry: row.Str(ColMerchantCountryCode),
			IssuerCountry:   proj.IssuerCountry,
			IssuerBIN8:      bins.IssuerBIN8,
			AcquirerBIN:     bins.AcquirerBIN,
		}
		jurisdiction[i] = ctx.ComputeJurisdiction(jin)
		assigned := ctx.ComputeJurisdictionAssigned(jurisdiction[i], jin)
		jurisdictionAssigned[i] = assigned
		jurisdictionAssignedNull[i] = assigned == ""

		authValid[i] = derive.ComputeAuthorizationCodeValid(row.Str(ColAuthorizationCode))
		reversalInd[i] = derive.ComputeReversalIndicator(row.Str(ColDraftCode))
		bizTxnType[i] = derive.ComputeBusinessTransactionType(derive.BusinessTransactionTypeInputs{
			DraftCode:            row.Str(ColDraftCode),
			MerchantCategoryCode: row.Str(ColMerchantCategoryCode),
			UsageCode:            row.Str(ColUsageCode),
			SpecialConditionInd:  row.Str(ColSpecialConditionIndicator),
			DraftCodeQualifier0:  row.Str(ColDraftCodeQualifier0),
		})

		purchaseDate, hasPurchase := row.Time(ColPurchaseDate)
		centralDate, hasCentral := row.Time(ColCentralProcessingDate)
		if hasPurchase && hasCentral {
			timeliness[i] = derive.ComputeTimeliness(centralDate, purchaseDate)
		} else {
			timelinessNull[i] = true
		}

		surcharge[i] = derive.ComputeSurchargeAmount(floatColumnValues(row, surchargeColumns)...)
		sourceCcyAlpha[i] = ctx.ComputeSourceCurrencyAlphabetic(row.Str(ColSourceCurrencyCode))

		bizAppID[i] = derive.ComputeCoalesced(row, businessApplicationIDSources)
		bizFormatCode[i] = derive.ComputeCoalesced(row, businessFormatCodeSources)
		msgReasonCode[i] = derive.ComputeCoalesced(row, messageReasonCodeSources)
		networkID[i] = derive.ComputeCoalesced(row, networkIDSources)
		typeOfPurchase[i] = derive.ComputeCoalesced(row, typeOfPurchaseSources)
	}

	addProjectedColumns(out, ardefProjected)
	out.AddColumn(artifact.NewStringColumn("issuer_bin_8", issuerBIN8))
	out.AddColumn(artifact.NewStringColumn("acquirer_bin", acquirerBIN))
	out.AddColumn(artifact.NewStringColumn("jurisdiction", jurisdiction))
	jaCol := artifact.NewStringColumn("jurisdiction_assigned", jurisdictionAssigned)
	jaCol.Null = jurisdictionAssignedNull
	out.AddColumn(jaCol)
	out.AddColumn(artifact.NewStringColumn("authorization_code_valid", authValid))
	out.AddColumn(artifact.NewIntColumn("business_transaction_type", bizTxnType, make([]bool, n)))
	out.AddColumn(artifact.NewIntColumn("reversal_indicator", reversalInd, make([]bool, n)))
	tCol := artifact.NewIntColumn("timeliness", timeliness, timelinessNull)
	out.AddColumn(tCol)
	out.AddColumn(artifact.NewFloatColumn("surcharge_amount", surcharge, make([]bool, n)))
	out.AddColumn(artifact.NewStringColumn("source_currency_code_alphabetic", sourceCcyAlpha))
	out.AddColumn(artifact.NewStringColumn("business_application_id", bizAppID))
	out.AddColumn(artifact.NewStringColumn("business_format_code", bizFormatCode))
	out.AddColumn(artifact.NewStringColumn("message_reason_code", msgReasonCode))
	out.AddColumn(artifact.NewStringColumn("network_identification_code", networkID))
	out.AddColumn(artifact.NewStringColumn("type_of_purchase", typeOfPurchase))

	return out
}

// projectedColumn pairs a fixed output column name with its accessor so
// iteration order (and thus output column order) is deterministic across
// runs, required for the stage's byte-identical-artifact idempotence.
type projectedColumn struct {
	name string
	get  func(derive.ARDEFProjected) string
}

var projectedColumns = []projectedColumn{
	{"funding_source", func(p derive.ARDEFProjected) string { return p.FundingSource }},
	{"issuer_country", func(p derive.ARDEFProjected) string { return p.IssuerCountry }},
	{"issuer_region", func(p derive.ARDEFProjected) string { return p.IssuerRegion }},
	{"product_id", func(p derive.ARDEFProjected) string { return p.ProductID }},
	{"product_subtype", func(p derive.ARDEFProjected) string { return p.ProductSubtype }},
	{"ardef_country", func(p derive.ARDEFProjected) string { return p.ARDEFCountry }},
	{"b2b_program_id", func(p derive.ARDEFProjected) string { return p.B2BProgramID }},
	{"fast_funds", func(p derive.ARDEFProjected) string { return p.FastFunds }},
	{"nnss_indicator", func(p derive.ARDEFProjected) string { return p.NNSSIndicator }},
	{"technology_indicator", func(p derive.ARDEFProjected) string { return p.TechnologyIndicator }},
	{"travel_indicator", func(p derive.ARDEFProjected) string { return p.TravelIndicator }},
}

func addProjectedColumns(out *artifact.Frame, proj []derive.ARDEFProjected) {
	n := len(proj)
	for _, pc := range projectedColumns {
		vals := make([]string, n)
		null := make([]bool, n)
		for i, p := range proj {
			if !p.Matched {
				null[i] = true
				continue
			}
			vals[i] = pc.get(p)
		}
		col := artifact.NewStringColumn(pc.name, vals)
		col.Null = null
		out.AddColumn(col)
	}
}

func floatColumnValues(row derive.Row, names []string) []float64 {
	var vals []float64
	for _, n := range names {
		if v, ok := row.Float(n); ok {
			vals = append(vals, v)
		}
	}
	return vals
}
