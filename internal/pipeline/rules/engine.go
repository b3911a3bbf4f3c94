package rules

import (
	"fmt"

	"github.com/rawblock/visa-interchange/internal/model"
	"github.com/rawblock/visa-interchange/internal/pipeline/derive"
)

// compiledRule is one visa_rules row with its criteria cells parsed once at
// load time into typed predicates, keyed by criterion column name.
type compiledRule struct {
	rule       model.FeeRule
	predicates map[string]*Predicate
}

// Engine holds the rule table for one processing date, compiled once and
// reused across every transaction in the batch.
type Engine struct {
	rules []compiledRule
}

// Compile parses every rule's criteria cells into predicates in priority
// order (the order FeeRules returned them, i.e. ascending intelica_id). A
// malformed criterion is a fatal KindRuleDSL error for the whole batch.
func Compile(feeRules []model.FeeRule) (*Engine, error) {
	compiled := make([]compiledRule, 0, len(feeRules))
	for _, r := range feeRules {
		preds := make(map[string]*Predicate, len(r.Criteria))
		for column, raw := range r.Criteria {
			p, ok, err := Parse(column, raw)
			if err != nil {
				return nil, fmt.Errorf("rule %d criterion %s: %w", r.IntelicaID, column, err)
			}
			if !ok {
				continue
			}
			preds[column] = p
		}
		compiled = append(compiled, compiledRule{rule: r, predicates: preds})
	}
	return &Engine{rules: compiled}, nil
}

// RowInputs bundles everything a compiled rule's predicates may need to
// evaluate a single transaction: the jurisdiction code to match
// region_country_code against, the calculated columns the default/
// numeric-range criteria read, and the amount-currency conversion context.
type RowInputs struct {
	JurisdictionAssigned string
	Row                  derive.Row
	SourceAmount         float64
	SourceCurrency       string
	ExchangeRates        map[string]model.ExchangeRate
}

// Bind runs §4.6's priority-ordered first-match algorithm: the first
// compiled rule whose region_country_code matches the transaction's
// jurisdiction_assigned and whose every criterion predicate matches wins.
// No match returns model.Unbound.
func (e *Engine) Bind(in RowInputs) model.InterchangeBinding {
	for _, cr := range e.rules {
		if cr.rule.RegionCountryCode != in.JurisdictionAssigned {
			continue
		}
		if e.matchesAll(cr, in) {
			return model.InterchangeBinding{
				RegionCountryCode: cr.rule.RegionCountryCode,
				IntelicaID:        cr.rule.IntelicaID,
				FeeDescriptor:     cr.rule.FeeDescriptor,
				FeeCurrency:       cr.rule.FeeCurrency,
				FeeVariable:       cr.rule.FeeVariable,
				FeeFixed:          cr.rule.FeeFixed,
				FeeMin:            cr.rule.FeeMin,
				FeeCap:            cr.rule.FeeCap,
			}
		}
	}
	return model.Unbound
}

func (e *Engine) matchesAll(cr compiledRule, in RowInputs) bool {
	for column, pred := range cr.predicates {
		if !matchOne(column, pred, in) {
			return false
		}
	}
	return true
}

func matchOne(column string, pred *Predicate, in RowInputs) bool {
	switch pred.Group() {
	case GroupAmountCurrency:
		return pred.MatchAmount(in.SourceAmount, in.SourceCurrency, in.ExchangeRates)
	case GroupNumericRange:
		if v, ok := in.Row.Float(column); ok {
			return pred.MatchNumeric(v)
		}
		if v, ok := in.Row.Int(column); ok {
			return pred.MatchNumeric(float64(v))
		}
		return false
	default:
		return pred.MatchDefault(in.Row.Str(column))
	}
}
