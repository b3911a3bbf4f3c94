package derive

import (
	"testing"
	"time"

	"github.com/rawblock/visa-interchange/internal/model"
)

func TestComputeTimeliness(t *testing.T) {
	central := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	purchase := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := ComputeTimeliness(central, purchase); got != 5 {
		t.Errorf("ComputeTimeliness = %d, want 5", got)
	}
}

func TestComputeSurchargeAmountMax(t *testing.T) {
	if got := ComputeSurchargeAmount(1.5, 3.25, 0.5); got != 3.25 {
		t.Errorf("ComputeSurchargeAmount = %v, want 3.25", got)
	}
}

func TestComputeSurchargeAmountSingleZeroValue(t *testing.T) {
	if got := ComputeSurchargeAmount(0); got != 0 {
		t.Errorf("ComputeSurchargeAmount(0) = %v, want 0", got)
	}
}

func TestComputeSourceCurrencyAlphabetic(t *testing.T) {
	c := testContext(nil, nil, nil, nil)
	c.Currencies = map[string]model.Currency{
		"840": {NumericCode: "840", AlphabeticCode: "USD"},
	}
	if got := c.ComputeSourceCurrencyAlphabetic("840"); got != "USD" {
		t.Errorf("ComputeSourceCurrencyAlphabetic(840) = %q, want USD", got)
	}
	if got := c.ComputeSourceCurrencyAlphabetic("999"); got != "" {
		t.Errorf("ComputeSourceCurrencyAlphabetic(unknown) = %q, want empty", got)
	}
}
