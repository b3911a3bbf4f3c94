package artifact

import (
	"path/filepath"
	"testing"

	"github.com/rawblock/visa-interchange/internal/model"
)

func TestPathLandingLayerUsesFileIDVerbatim(t *testing.T) {
	ref := model.ArtifactRef{Layer: model.LayerLanding, ClientID: "C1", FileID: "landing.txt"}
	got := Path("/data", ref)
	want := filepath.Join("/data", "landing", "C1", "landing.txt")
	if got != want {
		t.Errorf("Path(landing) = %q, want %q", got, want)
	}
}

func TestPathNonLandingLayerAppendsExtension(t *testing.T) {
	ref := model.ArtifactRef{
		Layer: model.LayerStaging, ClientID: "C1", Brand: "VISA", FileType: "IN",
		ProcessingDate: "2026-03-10", Subdir: SubdirBaseIIExtDrafts, FileID: "F1",
	}
	got := Path("/data", ref)
	want := filepath.Join("/data", "staging", "C1", "VISA", "IN", "2026-03-10", SubdirBaseIIExtDrafts, "F1.parquet")
	if got != want {
		t.Errorf("Path(staging) = %q, want %q", got, want)
	}
}

func TestVSSSubdir(t *testing.T) {
	if got := VSSSubdir("RAW", "110"); got != "VSS_110_RAW" {
		t.Errorf("VSSSubdir(RAW, 110) = %q, want VSS_110_RAW", got)
	}
}
