package flowmgr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OSCC-Project/iMap-sub000/aig"
	"github.com/OSCC-Project/iMap-sub000/config"
	"github.com/OSCC-Project/iMap-sub000/equivalence"
	"github.com/OSCC-Project/iMap-sub000/flowmgr"
	"github.com/OSCC-Project/iMap-sub000/klut"
	"github.com/OSCC-Project/iMap-sub000/refactor"
	"github.com/OSCC-Project/iMap-sub000/rewrite"
)

func buildXorGraph() *aig.Graph {
	g := aig.NewGraph()
	a, b := g.CreatePI(), g.CreatePI()
	f1 := g.CreateAnd(a, b).Not()
	f2 := g.CreateAnd(a, f1).Not()
	f3 := g.CreateAnd(b, f1).Not()
	g.CreatePO(g.CreateAnd(f2, f3).Not())
	return g
}

func TestBalanceRewriteRefactorPreservePOCount(t *testing.T) {
	g := buildXorGraph()
	mgr := flowmgr.New(g, config.Default())

	mgr.Balance()
	mgr.Rewrite(rewrite.DefaultParams())
	mgr.Refactor(refactor.DefaultParams())

	require.Equal(t, 1, mgr.Current().NumPOs())
	require.Equal(t, 2, mgr.Current().NumPIs())
}

func TestComputeChoicesThenMapFPGAProducesAMapping(t *testing.T) {
	g := buildXorGraph()
	mgr := flowmgr.New(g, config.Default())

	require.NoError(t, mgr.ComputeChoices())
	mapping := mgr.MapFPGA(klut.DefaultParams())

	require.NotEmpty(t, mapping.Cells)
	require.Len(t, mapping.POs, 1)
}

func TestMapFPGAWithoutChoicesStillWorks(t *testing.T) {
	g := buildXorGraph()
	mgr := flowmgr.New(g, config.Default())

	mapping := mgr.MapFPGA(klut.DefaultParams())
	require.Len(t, mapping.POs, 1)
}

func TestHistoryCommitAndRestore(t *testing.T) {
	g := buildXorGraph()
	mgr := flowmgr.New(g, config.Default())

	mgr.CommitHistory("initial")
	mgr.Rewrite(rewrite.DefaultParams())
	require.Equal(t, []string{"initial"}, mgr.HistoryList())

	require.NoError(t, mgr.RestoreHistory(0))
	require.Equal(t, 2, mgr.Current().NumPIs())
}

func TestRestoreHistoryRejectsOutOfRangeIndexWithoutMutating(t *testing.T) {
	g := buildXorGraph()
	mgr := flowmgr.New(g, config.Default())
	before := mgr.Current()

	err := mgr.RestoreHistory(0)
	require.Error(t, err)
	require.Same(t, before, mgr.Current())
}

func TestCheckMappingEquivalenceSkippedWhenDebugOff(t *testing.T) {
	g := buildXorGraph()
	cfg := config.Default()
	cfg.FlowManager.Debug = false
	mgr := flowmgr.New(g, cfg)

	mapping := mgr.MapFPGA(klut.DefaultParams())
	res, err := mgr.CheckMappingEquivalence(g, mapping)
	require.NoError(t, err)
	require.Equal(t, equivalence.Equivalent, res)
}
