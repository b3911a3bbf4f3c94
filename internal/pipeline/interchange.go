package pipeline

import (
	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/model"
	"github.com/rawblock/visa-interchange/internal/pipeline/derive"
	"github.com/rawblock/visa-interchange/internal/pipeline/rules"
)

// Column names the Interchange stage's rule engine reads from the joined
// clean+calculated row context.
const (
	ColJurisdictionAssigned = "jurisdiction_assigned"
	ColSourceAmount         = "source_amount"
)

// Interchange compiles the fee rule table and binds every transaction to
// its first-matching rule, in priority order, per §4.6. A malformed
// criterion cell fails the whole batch with a KindRuleDSL error.
func Interchange(feeRules []model.FeeRule, rates map[string]model.ExchangeRate, clean, calculated *artifact.Frame) ([]model.InterchangeBinding, error) {
	engine, err := rules.Compile(feeRules)
	if err != nil {
		return nil, Wrap("interchange", KindRuleDSL, err)
	}

	joined := JoinCleanCalculated(clean, calculated)
	n := joined.NRows()
	bindings := make([]model.InterchangeBinding, n)

	for i := 0; i < n; i++ {
		row := derive.NewRow(joined, i)
		sourceCurrency := row.Str(ColSourceCurrencyCode)
		amount, _ := row.Float(ColSourceAmount)

		bindings[i] = engine.Bind(rules.RowInputs{
			JurisdictionAssigned: row.Str(ColJurisdictionAssigned),
			Row:                  row,
			SourceAmount:         amount,
			SourceCurrency:       sourceCurrency,
			ExchangeRates:        rates,
		})
	}

	return bindings, nil
}
