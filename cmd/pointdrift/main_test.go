package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	for _, fs := range []*pflag.FlagSet{analyzeCmd.Flags(), rootCmd.PersistentFlags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Name == "fx" {
				return
			}
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	analyzeFx = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := execute(t, "analyze", "--drift", "10", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		FxDriftPercent float64 `json:"fxDriftPercent"`
		Severity       string  `json:"severity"`
		Partners       []struct {
			ID string `json:"id"`
		} `json:"partners"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 10.0, doc.FxDriftPercent)
	assert.Equal(t, "medium", doc.Severity)
	assert.Len(t, doc.Partners, 4)
}

func TestAnalyzeTextNoDrift(t *testing.T) {
	out, err := execute(t, "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "No drift applied.")
	assert.Contains(t, out, "GlobalStay Hotels (EU-heavy)")
}

func TestAnalyzeFxOverride(t *testing.T) {
	out, err := execute(t, "analyze", "--fx", "eu=2", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		BaselineFx map[string]float64 `json:"baselineFx"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 2.0, doc.BaselineFx["EU"])
}

func TestAnalyzeScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("drift_percent: \"-20\"\n"), 0o644))

	out, err := execute(t, "analyze", "--scenario", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"fxDriftPercent": -20`)
	assert.Contains(t, out, `"severity": "high"`)
}

func TestAnalyzeUnknownFormat(t *testing.T) {
	_, err := execute(t, "analyze", "--format", "xml")
	assert.Error(t, err)
}

func TestPartnersCommand(t *testing.T) {
	out, err := execute(t, "partners")
	require.NoError(t, err)
	for _, id := range []string{"GSTAY_EU", "GSTAY_JP", "MART_US", "STREAM_UK"} {
		assert.Contains(t, out, id)
	}
}

func TestMetricsFileFlagUnderscore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pointdrift.prom")
	_, err := execute(t, "analyze", "--drift", "5", "--metrics_file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pointdrift_analyses_total")
}
