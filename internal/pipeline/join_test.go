package pipeline

import (
	"testing"

	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/model"
)

func frameOf(cols map[string][]string) *artifact.Frame {
	var n int
	for _, v := range cols {
		n = len(v)
		break
	}
	f := artifact.NewFrame(n)
	for name, v := range cols {
		f.AddColumn(artifact.NewStringColumn(name, v))
	}
	return f
}

func TestJoinCleanCalculatedNoCollision(t *testing.T) {
	clean := frameOf(map[string][]string{"pan": {"111", "222"}})
	calculated := frameOf(map[string][]string{"jurisdiction_assigned": {"US", "FR"}})

	out := JoinCleanCalculated(clean, calculated)
	if out.NRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", out.NRows())
	}
	if col, ok := out.Column("pan"); !ok || col.Strings[0] != "111" {
		t.Error("expected pan column to carry through unrenamed")
	}
	if col, ok := out.Column("jurisdiction_assigned"); !ok || col.Strings[1] != "FR" {
		t.Error("expected jurisdiction_assigned column to carry through unrenamed")
	}
}

func TestJoinCleanCalculatedSuffixesCollision(t *testing.T) {
	clean := frameOf(map[string][]string{"amount": {"10"}})
	calculated := frameOf(map[string][]string{"amount": {"10.5"}})

	out := JoinCleanCalculated(clean, calculated)
	orig, ok := out.Column("amount")
	if !ok || orig.Strings[0] != "10.5" {
		t.Error("expected calculated's amount column to keep the unsuffixed name")
	}
	renamed, ok := out.Column("amount" + suffixBaseII)
	if !ok || renamed.Strings[0] != "10" {
		t.Errorf("expected clean's colliding amount column renamed to amount%s", suffixBaseII)
	}
}

func TestJoinAppendsBindingsWithIntelicaSuffix(t *testing.T) {
	clean := frameOf(map[string][]string{"pan": {"111"}})
	calculated := frameOf(map[string][]string{"region_country_code": {"US"}})
	bindings := []model.InterchangeBinding{
		{RegionCountryCode: "US", IntelicaID: 42, FeeDescriptor: "desc"},
	}

	out := Join(clean, calculated, bindings)

	if col, ok := out.Column("region_country_code"); !ok || col.Strings[0] != "US" {
		t.Error("expected calculated's region_country_code to carry through unrenamed")
	}
	renamed, ok := out.Column("region_country_code" + suffixIntelica)
	if !ok || renamed.Strings[0] != "US" {
		t.Errorf("expected bindings' colliding region_country_code renamed to region_country_code%s", suffixIntelica)
	}
	intelicaCol, ok := out.Column("intelica_id")
	if !ok {
		t.Fatal("expected intelica_id column in joined output")
	}
	if intelicaCol.Null[0] || intelicaCol.Ints[0] != 42 {
		t.Errorf("expected intelica_id=42 non-null, got ints=%v null=%v", intelicaCol.Ints, intelicaCol.Null)
	}
}

func TestJoinUnboundBindingIsNullIntelicaID(t *testing.T) {
	clean := frameOf(map[string][]string{"pan": {"111"}})
	calculated := frameOf(map[string][]string{"x": {"y"}})
	bindings := []model.InterchangeBinding{model.Unbound}

	out := Join(clean, calculated, bindings)
	col, ok := out.Column("intelica_id")
	if !ok {
		t.Fatal("expected intelica_id column")
	}
	if !col.Null[0] {
		t.Error("expected Unbound binding to produce a null intelica_id cell")
	}
}
