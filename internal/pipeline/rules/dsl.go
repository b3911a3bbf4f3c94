// Package rules implements the interchange rule engine's criterion DSL:
// parsing each rule's criteria cells once at load time into typed
// predicates, then applying them against transactions in priority order.
package rules

import (
	"strconv"
	"strings"

	"github.com/rawblock/visa-interchange/internal/model"
)

// Group classifies a criterion column by its matching semantics.
type Group int

const (
	GroupDefault Group = iota
	GroupNumericRange
	GroupAmountCurrency
)

// numericRangeColumns and amountCurrencyColumns name the columns with
// non-default matching semantics; every other criterion column is
// default-group, including any column name the rule table doesn't
// recognize (per §4.6's "unknown criterion column is treated as
// default-group").
var numericRangeColumns = map[string]bool{
	"surcharge_amount": true,
	"timeliness":       true,
}
var amountCurrencyColumns = map[string]bool{
	"source_amount": true,
}

// GroupOf returns the matching group for a criterion column name.
func GroupOf(column string) Group {
	if numericRangeColumns[column] {
		return GroupNumericRange
	}
	if amountCurrencyColumns[column] {
		return GroupAmountCurrency
	}
	return GroupDefault
}

// comparator is one of <, <=, >, >=, =.
type comparator struct {
	op    string
	value float64
}

func (c comparator) match(v float64) bool {
	switch c.op {
	case "<":
		return v < c.value
	case "<=":
		return v <= c.value
	case ">":
		return v > c.value
	case ">=":
		return v >= c.value
	case "=":
		return v == c.value
	default:
		return false
	}
}

// numericRange is a `BETWEEN low AND high` (inclusive) or single-comparator
// predicate over a numeric value.
type numericRange struct {
	cmp        *comparator
	betweenLo  float64
	betweenHi  float64
	isBetween  bool
}

func (r numericRange) match(v float64) bool {
	if r.isBetween {
		return v >= r.betweenLo && v <= r.betweenHi
	}
	return r.cmp.match(v)
}

// Predicate is a criterion cell parsed once at rule-load time. Exactly one
// constructor field is populated, selected by group.
type Predicate struct {
	group         Group
	numeric       numericRange
	targetCcy     string
	defaultTokens defaultTokenSet
}

// defaultTokenSet is the default-group's include/exclude token sets after
// range expansion.
type defaultTokenSet struct {
	include map[string]bool // nil means "no positive constraint, match unless excluded"
	exclude map[string]bool
}

func (d defaultTokenSet) match(value string) bool {
	if d.exclude[value] {
		return false
	}
	if d.include == nil {
		return true
	}
	return d.include[value]
}

// normalizeCell applies §4.6's cell normalization: strip whitespace,
// upper-case, SPACE -> ' ', BLANK -> ''. Returns ("", true) for a blank cell
// (a no-op criterion that the caller should skip entirely).
func normalizeCell(raw string) (string, bool) {
	cell := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
	cell = strings.ReplaceAll(cell, "SPACE", " ")
	cell = strings.ReplaceAll(cell, "BLANK", "")
	if cell == "" || cell == "NAN" || cell == "NONE" {
		return "", true
	}
	return cell, false
}

// Parse compiles one rule's criterion cell for the given column into a
// Predicate. A malformed criterion returns an error (fatal to the
// Interchange stage, per §7's Rule DSL error kind).
func Parse(column, raw string) (*Predicate, bool, error) {
	cell, blank := normalizeCell(raw)
	if blank {
		return nil, false, nil
	}

	group := GroupOf(column)
	switch group {
	case GroupNumericRange:
		nr, err := parseNumericRange(cell)
		if err != nil {
			return nil, false, err
		}
		return &Predicate{group: group, numeric: nr}, true, nil

	case GroupAmountCurrency:
		idx := strings.IndexByte(cell, ',')
		if idx < 0 {
			return nil, false, dslError("amount-currency criterion missing currency: " + raw)
		}
		ccy := cell[:idx]
		nr, err := parseNumericRange(cell[idx+1:])
		if err != nil {
			return nil, false, err
		}
		return &Predicate{group: group, numeric: nr, targetCcy: ccy}, true, nil

	default:
		tokens, err := parseDefaultTokens(cell)
		if err != nil {
			return nil, false, err
		}
		return &Predicate{group: group, defaultTokens: tokens}, true, nil
	}
}

func parseNumericRange(expr string) (numericRange, error) {
	if strings.Contains(expr, "BETWEEN") {
		parts := strings.SplitN(expr, "BETWEEN", 2)
		rest := parts[1]
		andParts := strings.SplitN(rest, "AND", 2)
		if len(andParts) != 2 {
			return numericRange{}, dslError("malformed BETWEEN expression: " + expr)
		}
		lo, err := strconv.ParseFloat(strings.TrimSpace(andParts[0]), 64)
		if err != nil {
			return numericRange{}, dslError("malformed BETWEEN lower bound: " + expr)
		}
		hi, err := strconv.ParseFloat(strings.TrimSpace(andParts[1]), 64)
		if err != nil {
			return numericRange{}, dslError("malformed BETWEEN upper bound: " + expr)
		}
		return numericRange{isBetween: true, betweenLo: lo, betweenHi: hi}, nil
	}

	for _, op := range []string{"<=", ">=", "<", ">", "="} {
		if strings.HasPrefix(expr, op) {
			value, err := strconv.ParseFloat(strings.TrimSpace(expr[len(op):]), 64)
			if err != nil {
				return numericRange{}, dslError("malformed comparator expression: " + expr)
			}
			return numericRange{cmp: &comparator{op: op, value: value}}, nil
		}
	}
	return numericRange{}, dslError("unrecognized numeric-range criterion: " + expr)
}

// parseDefaultTokens splits a comma-separated token list, handling NOT:
// prefixes and low-high inclusive integer ranges.
func parseDefaultTokens(cell string) (defaultTokenSet, error) {
	set := defaultTokenSet{exclude: map[string]bool{}}
	tokens := strings.Split(cell, ",")

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		negate := false
		if strings.HasPrefix(tok, "NOT:") {
			negate = true
			tok = strings.TrimPrefix(tok, "NOT:")
		}

		expanded, err := expandToken(tok)
		if err != nil {
			return defaultTokenSet{}, err
		}

		if negate {
			for _, v := range expanded {
				set.exclude[v] = true
			}
			continue
		}
		if set.include == nil {
			set.include = map[string]bool{}
		}
		for _, v := range expanded {
			set.include[v] = true
		}
	}
	return set, nil
}

// expandToken expands a "low-high" integer range inclusively, or returns
// the single literal token unchanged.
func expandToken(tok string) ([]string, error) {
	if idx := strings.IndexByte(tok, '-'); idx > 0 {
		lo, errLo := strconv.Atoi(tok[:idx])
		hi, errHi := strconv.Atoi(tok[idx+1:])
		if errLo == nil && errHi == nil {
			if hi < lo {
				return nil, dslError("invalid range (high < low): " + tok)
			}
			width := len(tok[:idx])
			out := make([]string, 0, hi-lo+1)
			for v := lo; v <= hi; v++ {
				out = append(out, zeroPad(v, width))
			}
			return out, nil
		}
	}
	return []string{tok}, nil
}

func zeroPad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// MatchDefault evaluates a default-group predicate against a stringified
// column value.
func (p *Predicate) MatchDefault(value string) bool {
	return p.defaultTokens.match(strings.ToUpper(value))
}

// MatchNumeric evaluates a numeric-range predicate.
func (p *Predicate) MatchNumeric(v float64) bool {
	return p.numeric.match(v)
}

// MatchAmount converts amount from sourceCurrency into the predicate's
// target currency using rates (keyed by currency_from_code) and evaluates
// the numeric-range predicate against the converted value.
func (p *Predicate) MatchAmount(amount float64, sourceCurrency string, rates map[string]model.ExchangeRate) bool {
	rate, ok := rates[sourceCurrency]
	if !ok || rate.CurrencyTo != p.targetCcy {
		return false
	}
	converted := amount * rate.ExchangeValue
	return p.numeric.match(converted)
}

// Group reports the predicate's matching group.
func (p *Predicate) Group() Group { return p.group }

type dslErr string

func (e dslErr) Error() string { return string(e) }

func dslError(msg string) error { return dslErr(msg) }
