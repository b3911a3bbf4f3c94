package derive

import (
	"testing"
	"time"

	"github.com/rawblock/visa-interchange/internal/ardef"
	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/model"
)

func TestBoundARDEFMatch(t *testing.T) {
	records := []model.ARDEFRecord{
		{LowKey: 400000000, TableKey: 499999999, DeleteIndicator: " ",
			EffectiveDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			Country:       "US", ProductID: "P1"},
	}
	idx := ardef.Resolve(records, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := Context{ARDEF: idx}

	f := artifact.NewFrame(1)
	f.AddColumn(artifact.NewStringColumn("pan", []string{"411111111234"}))
	row := NewRow(f, 0)

	rec, matched := c.BoundARDEF(row, "pan")
	if !matched {
		t.Fatal("expected a matching ARDEF interval")
	}
	if rec.Country != "US" {
		t.Errorf("expected matched record's country US, got %q", rec.Country)
	}
}

func TestBoundARDEFNoMatchReturnsSentinel(t *testing.T) {
	idx := ardef.Resolve(nil, time.Now().UTC())
	c := Context{ARDEF: idx}

	f := artifact.NewFrame(1)
	f.AddColumn(artifact.NewStringColumn("pan", []string{"999999999999"}))
	row := NewRow(f, 0)

	rec, matched := c.BoundARDEF(row, "pan")
	if matched {
		t.Error("expected no match for an unindexed PAN")
	}
	if rec != model.SentinelARDEF {
		t.Errorf("expected the sentinel ARDEF record, got %+v", rec)
	}
}

func TestBoundARDEFShortPANFails(t *testing.T) {
	idx := ardef.Resolve(nil, time.Now().UTC())
	c := Context{ARDEF: idx}

	f := artifact.NewFrame(1)
	f.AddColumn(artifact.NewStringColumn("pan", []string{"1234"}))
	row := NewRow(f, 0)

	_, matched := c.BoundARDEF(row, "pan")
	if matched {
		t.Error("expected a too-short PAN to never match")
	}
}

func TestComputeARDEFProjectedUnmatchedIsAllZeroValue(t *testing.T) {
	idx := ardef.Resolve(nil, time.Now().UTC())
	c := Context{ARDEF: idx, Countries: map[string]model.Country{}}

	f := artifact.NewFrame(1)
	f.AddColumn(artifact.NewStringColumn("pan", []string{"999999999999"}))
	row := NewRow(f, 0)

	got := ComputeARDEFProjected(c, row, "pan")
	if got.Matched {
		t.Error("expected Matched=false for a sentinel binding")
	}
	if got.IssuerCountry != "" || got.ProductID != "" {
		t.Errorf("expected every projected field blank for a sentinel binding, got %+v", got)
	}
}
