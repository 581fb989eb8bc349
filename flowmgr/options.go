package flowmgr

import (
	"github.com/OSCC-Project/iMap-sub000/config"
	"github.com/OSCC-Project/iMap-sub000/klut"
	"github.com/OSCC-Project/iMap-sub000/rewrite"
)

// klutParamsFrom translates the klut_mapping section of cfg into
// klut.Params, one of the section conversions config/doc.go places in
// this package.
func klutParamsFrom(cfg *config.Config) klut.Params {
	return klut.Params{
		K:          cfg.KlutMapping.CutSize,
		L:          cfg.KlutMapping.CutLimit,
		FlowIters:  cfg.KlutMapping.UGlobalRound,
		AreaIters:  cfg.KlutMapping.ULocalRound,
		Preprocess: true,
	}
}

// rewriteParamsFrom translates the rewrite section of cfg into
// rewrite.Params. The source's use_zero_gain/preserve_depth toggles have
// no counterpart here: rewrite.Params models only the cut-size/cut-limit
// bound (see DESIGN.md's rewrite simplification entry), so Compress and
// Compress2 run the same Params throughout instead of varying these
// toggles between rounds (recorded as an Open Question decision in
// DESIGN.md).
func rewriteParamsFrom(cfg *config.Config) rewrite.Params {
	return rewrite.Params{
		K: cfg.Rewrite.CutSize,
		L: cfg.Rewrite.CutLimit,
	}
}
