package ardef

import (
	"testing"
	"time"

	"github.com/rawblock/visa-interchange/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestResolveAndLookupBasicInterval(t *testing.T) {
	processing := date(2026, 6, 1)
	records := []model.ARDEFRecord{
		{LowKey: 100000000, TableKey: 199999999, DeleteIndicator: " ",
			EffectiveDate: date(2020, 1, 1)},
	}
	idx := Resolve(records, processing)
	if idx.Len() != 1 {
		t.Fatalf("expected 1 interval, got %d", idx.Len())
	}

	got := idx.Lookup(150000000)
	if got.LowKey != 100000000 {
		t.Errorf("expected lookup within the interval to hit it, got %+v", got)
	}

	miss := idx.Lookup(200000000)
	if miss != model.SentinelARDEF {
		t.Errorf("expected lookup outside every interval to return the sentinel, got %+v", miss)
	}
}

func TestResolveExcludesDeletedRecords(t *testing.T) {
	processing := date(2026, 6, 1)
	records := []model.ARDEFRecord{
		{LowKey: 100, TableKey: 200, DeleteIndicator: "D", EffectiveDate: date(2020, 1, 1)},
	}
	idx := Resolve(records, processing)
	if idx.Len() != 0 {
		t.Errorf("expected deleted records to be excluded, got %d intervals", idx.Len())
	}
}

func TestResolveExcludesOutsideValidityWindow(t *testing.T) {
	processing := date(2026, 6, 1)
	records := []model.ARDEFRecord{
		{LowKey: 100, TableKey: 200, DeleteIndicator: " ", EffectiveDate: date(2027, 1, 1)}, // not yet effective
		{LowKey: 300, TableKey: 400, DeleteIndicator: " ", EffectiveDate: date(2020, 1, 1),
			ValidUntil: date(2021, 1, 1)}, // already expired
	}
	idx := Resolve(records, processing)
	if idx.Len() != 0 {
		t.Errorf("expected both records outside the validity window excluded, got %d intervals", idx.Len())
	}
}

func TestResolveDuplicateTableKeyNewestEffectiveDateWins(t *testing.T) {
	processing := date(2026, 6, 1)
	records := []model.ARDEFRecord{
		{LowKey: 100, TableKey: 200, DeleteIndicator: " ", EffectiveDate: date(2020, 1, 1), Country: "old"},
		{LowKey: 100, TableKey: 200, DeleteIndicator: " ", EffectiveDate: date(2022, 1, 1), Country: "new"},
	}
	idx := Resolve(records, processing)
	if idx.Len() != 1 {
		t.Fatalf("expected duplicate table_key to dedupe to 1 interval, got %d", idx.Len())
	}
	got := idx.Lookup(150)
	if got.Country != "new" {
		t.Errorf("expected the newest effective_date record to win, got country=%q", got.Country)
	}
}

func TestResolveOverlapElimination(t *testing.T) {
	processing := date(2026, 6, 1)
	records := []model.ARDEFRecord{
		{LowKey: 100, TableKey: 300, DeleteIndicator: " ", EffectiveDate: date(2020, 1, 1)},
		{LowKey: 200, TableKey: 400, DeleteIndicator: " ", EffectiveDate: date(2020, 1, 1)},
	}
	idx := Resolve(records, processing)
	if idx.Len() != 1 {
		t.Fatalf("expected the overlapping second interval dropped, got %d intervals", idx.Len())
	}
}

func TestLookupNoMatchReturnsSentinel(t *testing.T) {
	idx := Resolve(nil, date(2026, 1, 1))
	got := idx.Lookup(12345)
	if got != model.SentinelARDEF {
		t.Errorf("expected an empty index to always return the sentinel, got %+v", got)
	}
}
