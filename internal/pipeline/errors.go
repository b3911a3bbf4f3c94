// Package pipeline implements the six-stage batch transformation: Transform,
// Extract, Clean, Calculate/ARDEF, Interchange, and Store.
package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure per the error-handling design.
type Kind int

const (
	// KindInputShape covers unknown header length or corrupt fixed-width
	// lines. The stage reports and writes an empty artifact; it does not fail.
	KindInputShape Kind = iota
	// KindCoercion covers a single cell failing to parse. The cell becomes
	// null and the row continues; this kind never reaches a caller as an error.
	KindCoercion
	// KindConfiguration covers missing field definitions, non-positive
	// decimal scale, unknown date formats, or a missing client row. Fatal.
	KindConfiguration
	// KindRuleDSL covers an unparseable criterion cell. Fatal to Interchange.
	KindRuleDSL
	// KindStorage covers I/O failure reading or writing an artifact. Fatal.
	KindStorage
	// KindMetadataLookup covers a derivation depending on metadata state;
	// a missing ARDEF interval is not itself an error (the sentinel is used),
	// and an unknown currency code yields a blank alphabetic code, but a
	// failure reading a metadata table (countries, currencies, ARDEF, fee
	// rules, exchange rates) is fatal.
	KindMetadataLookup
)

func (k Kind) String() string {
	switch k {
	case KindInputShape:
		return "input-shape"
	case KindCoercion:
		return "coercion"
	case KindConfiguration:
		return "configuration"
	case KindRuleDSL:
		return "rule-dsl"
	case KindStorage:
		return "storage"
	case KindMetadataLookup:
		return "metadata-lookup"
	default:
		return "unknown"
	}
}

// Error is a pipeline failure tagged with its Kind so callers can branch on
// errors.As without string matching.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s stage, %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap builds a tagged Error for the given stage and kind.
func Wrap(stage string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Stage: stage, Err: err}
}

// Is reports whether err is a pipeline Error of the given Kind.
func Is(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
