package artifact

import (
	"path/filepath"

	"github.com/rawblock/visa-interchange/internal/model"
)

// Path resolves an ArtifactRef to its file path under datalakeRoot, per the
// layout: <datalake>/<layer>/<client_id>/[<brand>/<file_type>/<processing_date>/<subdir>/]<file_id>.parquet
// The landing layer omits the bracketed segment and uses the caller-supplied
// file_id verbatim (the file_control landing_file_name, passed as FileID by
// the caller) rather than appending .parquet, since landing files are the
// untouched raw input.
func Path(datalakeRoot string, ref model.ArtifactRef) string {
	if ref.Layer == model.LayerLanding {
		return filepath.Join(datalakeRoot, string(ref.Layer), ref.ClientID, ref.FileID)
	}
	return filepath.Join(
		datalakeRoot, string(ref.Layer), ref.ClientID,
		ref.Brand, ref.FileType, ref.ProcessingDate, ref.Subdir,
		ref.FileID+".parquet",
	)
}

// Stage subdirectory names, per the external-interfaces subdir table.
const (
	SubdirBaseIIRawDrafts   = "100-BASEII_RAW_DRAFTS"
	SubdirBaseIIExtDrafts   = "200-BASEII_EXT_DRAFTS"
	SubdirBaseIIClnDrafts   = "300-BASEII_CLN_DRAFTS"
	SubdirBaseIICalDrafts   = "400-BASEII_CAL_DRAFTS"
	SubdirBaseIIItxDrafts   = "500-BASEII_ITX_DRAFTS"
	SubdirBaseIIDrafts      = "BASEII_DRAFTS"

	SubdirSMSRaw = "100-SMS_RAW"
	SubdirSMSExt = "200-SMS_EXT"
	SubdirSMSCln = "300-SMS_CLN"
	SubdirSMSCal = "400-SMS_CAL"
	SubdirSMSItx = "500-SMS_ITX"
	SubdirSMS    = "SMS"
)

// VSSSubdir builds the VSS family's per-type subdirectory name, e.g.
// "VSS_110_RAW" for stage "RAW" and vssType "110" (no numeric stage prefix).
func VSSSubdir(stage, vssType string) string {
	return "VSS_" + vssType + "_" + stage
}
