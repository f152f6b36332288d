package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justanotherdot/hedgehog-sub000/targeted"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hedgehog.yaml")

	f := File{
		Prop: &PropSection{TestLimit: 250, ShrinkLimit: 500, SizeLimit: 80, DiscardLimit: 50},
		Targeted: &TargetedSection{
			Objective: "minimize", SearchSteps: 2000, InitialTemperature: 50,
			CoolingRate: 0.9, MinTemperature: 0.05, InitialSamples: 40,
			MaxSearchTimeSecs: 30, SizeLimit: 60,
		},
		Parallel: &ParallelSection{
			WorkerCount: 8, WorkDistribution: "chunk_based", TimeoutSecs: 5, DetectNonDeterminism: true,
		},
	}

	require.NoError(t, Save(path, f))

	loaded, err := Load(path)
	require.NoError(t, err)

	propCfg := loaded.PropConfig()
	require.Equal(t, 250, propCfg.TestLimit)
	require.Equal(t, 500, propCfg.ShrinkLimit)

	targetedCfg := loaded.TargetedConfig()
	require.Equal(t, targeted.Minimize, targetedCfg.Objective)
	require.Equal(t, 2000, targetedCfg.SearchSteps)

	parallelCfg := loaded.ParallelConfig()
	require.Equal(t, 8, parallelCfg.WorkerCount)
}

func TestLoadMissingSectionsFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, Save(path, File{}))

	loaded, err := Load(path)
	require.NoError(t, err)

	require.NotZero(t, loaded.PropConfig().TestLimit, "expected default prop config to carry a nonzero test limit")
}
