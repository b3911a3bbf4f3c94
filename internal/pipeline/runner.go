package pipeline

import (
	"go.uber.org/zap"

	"github.com/rawblock/visa-interchange/internal/ardef"
	"github.com/rawblock/visa-interchange/internal/artifact"
	"github.com/rawblock/visa-interchange/internal/config"
	"github.com/rawblock/visa-interchange/internal/logging"
	"github.com/rawblock/visa-interchange/internal/metadata"
	"github.com/rawblock/visa-interchange/internal/model"
	"github.com/rawblock/visa-interchange/internal/pipeline/derive"
	"github.com/rawblock/visa-interchange/internal/rawfile"
)

// Runner drives the six stages synchronously for one client/file, opening
// the metadata store once and closing it on return, per the concurrency
// model's per-invocation database lifetime.
type Runner struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewRunner builds a Runner over cfg, logging under the given base logger.
func NewRunner(cfg *config.Config, logger *zap.Logger) *Runner {
	return &Runner{Config: cfg, Logger: logger}
}

// stageResult holds every intermediate frame one compute pass produces, so
// RunAll can persist each and VerifyIdempotent can diff two passes without
// touching storage.
type stageResult struct {
	raw        *artifact.Frame
	rawOK      bool
	extracted  *artifact.Frame
	clean      *artifact.Frame
	calculated *artifact.Frame
	bindings   []model.InterchangeBinding
	joined     *artifact.Frame
}

// compute runs every pure stage (Transform through Join) for one client/file
// against a freshly opened metadata store, performing no artifact writes.
// Called twice with no intervening state change, it must return
// byte-identical frames, per the idempotence invariant.
func (r *Runner) compute(clientID, fileID string, log *zap.Logger) (model.FileControl, stageResult, error) {
	var res stageResult

	store, err := metadata.Open(r.Config.DatabasePath)
	if err != nil {
		return model.FileControl{}, res, Wrap("run-all", KindStorage, err)
	}
	defer store.Close()

	fc, err := store.FileControl(clientID, fileID)
	if err != nil {
		return fc, res, Wrap("run-all", KindConfiguration, err)
	}
	client, err := store.Client(clientID)
	if err != nil {
		return fc, res, Wrap("run-all", KindConfiguration, err)
	}
	countries, err := store.Countries()
	if err != nil {
		return fc, res, Wrap("run-all", KindMetadataLookup, err)
	}
	currencies, err := store.Currencies()
	if err != nil {
		return fc, res, Wrap("run-all", KindMetadataLookup, err)
	}

	fam := BaseIIDrafts
	landingRef := model.ArtifactRef{Layer: model.LayerLanding, ClientID: clientID, FileID: fc.LandingFileName}
	landingPath := artifact.Path(r.Config.DatalakePath, landingRef)
	lines, err := rawfile.ReadLines(landingPath)
	if err != nil {
		return fc, res, Wrap("run-all", KindStorage, err)
	}

	res.raw, res.rawOK = Transform(lines, fam, log.Sugar().Infof)
	if !res.rawOK {
		return fc, res, nil
	}

	defs, err := store.FieldDefinitions(fam.Name)
	if err != nil {
		return fc, res, Wrap("extract", KindConfiguration, err)
	}

	res.extracted, err = Extract(res.raw, defs)
	if err != nil {
		return fc, res, err
	}

	res.clean, err = Clean(res.extracted, defs, fc.FileProcessingDate)
	if err != nil {
		return fc, res, err
	}

	ardefRecords, err := store.ARDEFRecords()
	if err != nil {
		return fc, res, Wrap("calculate", KindMetadataLookup, err)
	}
	idx := ardef.Resolve(ardefRecords, fc.FileProcessingDate)
	ctx := derive.NewContext(client, fc, countries, currencies, idx)
	res.calculated = Calculate(ctx, res.clean)

	feeRules, err := store.FeeRules(fc.FileProcessingDate)
	if err != nil {
		return fc, res, Wrap("interchange", KindMetadataLookup, err)
	}
	rates, err := store.ExchangeRates(fc.BrandID, fc.FileProcessingDate)
	if err != nil {
		return fc, res, Wrap("interchange", KindMetadataLookup, err)
	}

	res.bindings, err = Interchange(feeRules, rates, res.clean, res.calculated)
	if err != nil {
		return fc, res, err
	}
	res.joined = Join(res.clean, res.calculated, res.bindings)

	return fc, res, nil
}

// RunAll processes one landing file through Transform, Extract, Clean,
// Calculate, Interchange, and Store for the BASE II draft family, writing
// the raw, extracted, clean, and calculated frames and the final joined
// frame each to its own subdir.
func (r *Runner) RunAll(clientID, fileID string) error {
	log := logging.WithStage(r.Logger, "run-all", clientID, fileID)

	fc, res, err := r.compute(clientID, fileID, log)
	if err != nil {
		return err
	}

	artStore := artifact.NewStore(r.Config.DatalakePath)

	if !res.rawOK {
		log.Warn("input-shape: unrecognized header length, writing empty artifact")
		return artStore.Write(r.stageRef(fc, artifact.SubdirBaseIIRawDrafts), res.raw)
	}
	if err := artStore.Write(r.stageRef(fc, artifact.SubdirBaseIIRawDrafts), res.raw); err != nil {
		return Wrap("transform", KindStorage, err)
	}
	if err := artStore.Write(r.stageRef(fc, artifact.SubdirBaseIIExtDrafts), res.extracted); err != nil {
		return Wrap("extract", KindStorage, err)
	}
	if err := artStore.Write(r.stageRef(fc, artifact.SubdirBaseIIClnDrafts), res.clean); err != nil {
		return Wrap("clean", KindStorage, err)
	}
	if err := artStore.Write(r.stageRef(fc, artifact.SubdirBaseIICalDrafts), res.calculated); err != nil {
		return Wrap("calculate", KindStorage, err)
	}
	if err := artStore.Write(r.stageRef(fc, artifact.SubdirBaseIIItxDrafts), res.joined); err != nil {
		return Wrap("store", KindStorage, err)
	}

	log.Info("run-all complete", zap.Int("rows", res.joined.NRows()))
	return nil
}

func (r *Runner) stageRef(fc model.FileControl, subdir string) model.ArtifactRef {
	return model.ArtifactRef{
		Layer:          model.LayerOperational,
		ClientID:       fc.ClientID,
		Brand:          fc.BrandID,
		FileType:       string(fc.FileType),
		ProcessingDate: fc.FileProcessingDate.Format("2006-01-02"),
		Subdir:         subdir,
		FileID:         fc.FileID,
	}
}
