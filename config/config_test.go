package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/config"
)

func TestDefaultMatchesPackageDefaults(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 6, cfg.KlutMapping.CutSize)
	require.Equal(t, 8, cfg.KlutMapping.CutLimit)
	require.True(t, cfg.FlowManager.UseBalance)
	require.True(t, cfg.FlowManager.UseRewrite)
}

func TestLoadOverlaysOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "imap.json")
	body := `{"flow_manager":{"debug":true,"use_rewrite":false},"klut_mapping":{"cut_size":4}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.True(t, cfg.FlowManager.Debug)
	require.False(t, cfg.FlowManager.UseRewrite)
	require.True(t, cfg.FlowManager.UseBalance, "keys absent from the file keep their default")
	require.Equal(t, 4, cfg.KlutMapping.CutSize)
	require.Equal(t, 8, cfg.KlutMapping.CutLimit, "cut_limit wasn't overridden, keeps default")
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
