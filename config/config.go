package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// FlowManager mirrors the flow_manager.* keys of spec.md §6.
type FlowManager struct {
	Debug       bool `json:"debug"`
	Iterations  int  `json:"iterations"`
	UseBalance  bool `json:"use_balance"`
	UseRewrite  bool `json:"use_rewrite"`
	Verbose     bool `json:"verbose"`
	VeryVerbose bool `json:"very_verbose"`
}

// KlutMapping mirrors the klut_mapping.* keys.
type KlutMapping struct {
	CutSize     int `json:"cut_size"`
	CutLimit    int `json:"cut_limit"`
	UGlobalRound int `json:"uGlobal_round"`
	ULocalRound  int `json:"uLocal_round"`
}

// Rewrite mirrors the rewrite.* keys.
type Rewrite struct {
	CutSize             int  `json:"cut_size"`
	CutLimit            int  `json:"cut_limit"`
	MinCandidateCutSize int  `json:"min_candidate_cut_size"`
	UseZeroGain         bool `json:"use_zero_gain"`
	PreserveDepth       bool `json:"preserve_depth"`
}

// Config is the full JSON document of spec.md §6.
type Config struct {
	FlowManager FlowManager `json:"flow_manager"`
	KlutMapping KlutMapping `json:"klut_mapping"`
	Rewrite     Rewrite     `json:"rewrite"`
}

// Default returns the configuration matching every package's own
// DefaultParams, so loading no file at all is equivalent to Default().
func Default() *Config {
	return &Config{
		FlowManager: FlowManager{UseBalance: true, UseRewrite: true},
		KlutMapping: KlutMapping{CutSize: 6, CutLimit: 8, UGlobalRound: 2, ULocalRound: 1},
		Rewrite:     Rewrite{CutSize: 4, CutLimit: 8},
	}
}

// Load reads and parses path, starting from Default() and overwriting
// with whatever keys are present (malformed input is rejected before any
// core component runs — spec.md §7's "front-end rejects before calling
// the core").
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
