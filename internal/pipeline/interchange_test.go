package pipeline

import (
	"testing"

	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/model"
)

func TestInterchangeBindsEachRowInOrder(t *testing.T) {
	clean := frameOf(map[string][]string{"pan": {"1", "2"}})
	calculated := artifact.NewFrame(2)
	calculated.AddColumn(artifact.NewStringColumn(ColJurisdictionAssigned, []string{"US", "FR"}))
	calculated.AddColumn(artifact.NewFloatColumn(ColSourceAmount, []float64{10, 10}, []bool{false, false}))
	calculated.AddColumn(artifact.NewStringColumn(ColSourceCurrencyCode, []string{"USD", "USD"}))

	rulesTable := []model.FeeRule{
		{RegionCountryCode: "US", IntelicaID: 1, FeeDescriptor: "us-rule"},
	}

	bindings, err := Interchange(rulesTable, nil, clean, calculated)
	if err != nil {
		t.Fatalf("Interchange error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	if bindings[0].IntelicaID != 1 {
		t.Errorf("expected row 0 (US) to bind to rule 1, got %+v", bindings[0])
	}
	if bindings[1] != model.Unbound {
		t.Errorf("expected row 1 (FR) to be unbound, got %+v", bindings[1])
	}
}

func TestInterchangeMalformedCriterionIsFatal(t *testing.T) {
	clean := frameOf(map[string][]string{"pan": {"1"}})
	calculated := artifact.NewFrame(1)
	calculated.AddColumn(artifact.NewStringColumn(ColJurisdictionAssigned, []string{"US"}))

	rulesTable := []model.FeeRule{
		{RegionCountryCode: "US", IntelicaID: 1, Criteria: map[string]string{"timeliness": "??bad??"}},
	}

	if _, err := Interchange(rulesTable, nil, clean, calculated); err == nil {
		t.Fatal("expected a malformed rule criterion to fail the whole Interchange call")
	}
}
