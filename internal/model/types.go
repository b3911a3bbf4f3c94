// Package model defines the shared record and metadata types that flow
// between pipeline stages: field definitions, ARDEF intervals, fee rules,
// and the small reference tables read from the metadata store.
package model

import "time"

// Layer names the artifact store's storage tier.
type Layer string

const (
	LayerLanding     Layer = "landing"
	LayerStaging     Layer = "staging"
	LayerOperational Layer = "operational"
	LayerAnalytics   Layer = "analytics"
)

// FileType distinguishes inbound from outbound files in file_control.
type FileType string

const (
	FileTypeIn  FileType = "IN"
	FileTypeOut FileType = "OUT"
)

// ArtifactRef identifies one columnar artifact by its full addressing tuple.
type ArtifactRef struct {
	Layer          Layer
	ClientID       string
	Brand          string
	FileType       string
	ProcessingDate string // YYYY-MM-DD
	Subdir         string
	FileID         string
}

// Client is a row of the client table: client_id plus its BIN lists.
// Issuing BIN lists are comma-separated strings in the store; Client holds
// them already split for membership testing.
type Client struct {
	ClientID           string
	IssuingBINs6Digit  []string
	IssuingBINs8Digit  []string
	AcquiringBINs      []string
}

// Country is a row of the country table.
type Country struct {
	CountryCode    string
	VisaRegionCode string
}

// FileControl is a row of the file_control table: the record describing one
// landing file and the processing date governing every derived artifact.
type FileControl struct {
	ClientID             string
	FileID               string
	BrandID              string
	FileType             FileType
	FileProcessingDate   time.Time
	LandingFileName      string
}

// FieldDefinition is a row of visa_fields: one named field within one
// sub-record of one record family.
type FieldDefinition struct {
	TypeRecord             string
	TCSN                   string // sub_record_id, "0".."7" for drafts
	Position               int    // 1-based
	Length                 int
	ColumnName             string
	SecondaryIdentifierPos int
	SecondaryIdentifierLen int
	SecondaryIdentifier    string
	ColumnType             string // "str", "int", "float", "date"
	FloatDecimals          int
	DateFormat             string
}

// HasSecondaryIdentifier reports whether this field definition further
// restricts its source rows by a literal substring match.
func (f FieldDefinition) HasSecondaryIdentifier() bool {
	return f.SecondaryIdentifierLen > 0 && f.SecondaryIdentifier != ""
}

// ARDEFRecord is one row of visa_ardef before and after interval resolution.
type ARDEFRecord struct {
	LowKey         int64
	TableKey       int64
	EffectiveDate  time.Time
	ValidUntil     time.Time
	DeleteIndicator string
	FundingSource   string
	Country         string
	Region          string
	ProductID       string
	ProductSubtype  string
	B2BProgramID    string
	FastFunds       string
	NNSSIndicator   string
	TechnologyIndicator string
	TravelIndicator string
}

// SentinelARDEF is the zero-interval record used when a PAN matches no
// ARDEF interval; downstream projections of it are always null.
var SentinelARDEF = ARDEFRecord{LowKey: 0, TableKey: 0}

// FeeRule is a row of visa_rules: identity/fee columns plus a map of raw
// criterion cells keyed by column name.
type FeeRule struct {
	RegionCountryCode string
	IntelicaID        int64
	ValidFrom         time.Time
	ValidUntil        time.Time
	FeeDescriptor     string
	FeeCurrency       string
	FeeVariable       float64
	FeeFixed          float64
	FeeMin            float64
	FeeCap            float64
	Criteria          map[string]string
}

// ExchangeRate is a row of exchange_rate.
type ExchangeRate struct {
	Brand            string
	RateDate         time.Time
	CurrencyFromCode string
	CurrencyTo       string
	ExchangeValue    float64
}

// Currency is a row of the currency table.
type Currency struct {
	NumericCode     string
	AlphabeticCode  string
}

// TransactionType is a row of visa_transaction_type.
type TransactionType struct {
	BusinessTransactionTypeID int
	TransactionTypeID         int
}

// InterchangeBinding is the rule-engine output for one transaction.
type InterchangeBinding struct {
	RegionCountryCode string
	IntelicaID        int64 // -1 means unbound
	FeeDescriptor     string
	FeeCurrency       string
	FeeVariable       float64
	FeeFixed          float64
	FeeMin            float64
	FeeCap            float64
}

// Unbound is the binding written before any rule has matched.
var Unbound = InterchangeBinding{IntelicaID: -1}
