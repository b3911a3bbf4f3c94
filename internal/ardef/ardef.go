// Package ardef implements the Account-Range-Definition interval resolver:
// filtering, deduping, and sorting visa_ardef rows into a disjoint-interval
// index with O(log n) point lookup.
package ardef

import (
	"sort"
	"time"

	"github.com/rawblock/visa-interchange/internal/model"
)

// Index is the immutable, sorted, disjoint-interval index built by
// Resolve. It is safe to share read-only across parallel per-row work.
type Index struct {
	records []model.ARDEFRecord // sorted by low_key ascending, pairwise disjoint
}

// Resolve filters, dedupes, sorts, and overlap-eliminates the raw
// visa_ardef rows into the interval index described in the data model.
func Resolve(records []model.ARDEFRecord, processingDate time.Time) *Index {
	valid := make([]model.ARDEFRecord, 0, len(records))
	for _, r := range records {
		if r.DeleteIndicator != " " {
			continue
		}
		validUntil := r.ValidUntil
		if validUntil.IsZero() {
			validUntil = processingDate
		}
		if r.EffectiveDate.After(processingDate) || processingDate.After(validUntil) {
			continue
		}
		valid = append(valid, r)
	}

	// Duplicate table_key: newest effective_date wins.
	byTableKey := make(map[int64]model.ARDEFRecord)
	for _, r := range valid {
		existing, ok := byTableKey[r.TableKey]
		if !ok || r.EffectiveDate.After(existing.EffectiveDate) {
			byTableKey[r.TableKey] = r
		}
	}
	deduped := make([]model.ARDEFRecord, 0, len(byTableKey))
	for _, r := range byTableKey {
		deduped = append(deduped, r)
	}

	// Sort by (table_key asc, effective_date desc, low_key asc) before
	// duplicate-low_key and overlap resolution, per the data model.
	sort.Slice(deduped, func(i, j int) bool {
		a, b := deduped[i], deduped[j]
		if a.TableKey != b.TableKey {
			return a.TableKey < b.TableKey
		}
		if !a.EffectiveDate.Equal(b.EffectiveDate) {
			return a.EffectiveDate.After(b.EffectiveDate)
		}
		return a.LowKey < b.LowKey
	})

	// Duplicate low_key: first (by the sort above) wins.
	seenLowKey := make(map[int64]bool)
	firstByLowKey := make([]model.ARDEFRecord, 0, len(deduped))
	for _, r := range deduped {
		if seenLowKey[r.LowKey] {
			continue
		}
		seenLowKey[r.LowKey] = true
		firstByLowKey = append(firstByLowKey, r)
	}

	// Overlap elimination: any record whose low_key <= the previous
	// record's table_key is dropped, walking in the same sorted order.
	var disjoint []model.ARDEFRecord
	var prevTableKey int64 = -1
	first := true
	for _, r := range firstByLowKey {
		if !first && r.LowKey <= prevTableKey {
			continue
		}
		disjoint = append(disjoint, r)
		prevTableKey = r.TableKey
		first = false
	}

	// Final index must be sorted by low_key for binary search.
	sort.Slice(disjoint, func(i, j int) bool { return disjoint[i].LowKey < disjoint[j].LowKey })

	return &Index{records: disjoint}
}

// Lookup returns the ARDEF interval containing account9, or the sentinel
// [0,0] record if no interval matches. O(log n) via binary search.
func (idx *Index) Lookup(account9 int64) model.ARDEFRecord {
	records := idx.records
	i := sort.Search(len(records), func(i int) bool {
		return records[i].TableKey >= account9
	})
	if i < len(records) && records[i].LowKey <= account9 && account9 <= records[i].TableKey {
		return records[i]
	}
	return model.SentinelARDEF
}

// Len reports the number of disjoint intervals in the index.
func (idx *Index) Len() int { return len(idx.records) }
