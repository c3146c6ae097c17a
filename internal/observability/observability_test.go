package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	m1 := NewMetrics()
	m2 := NewMetrics()

	m1.RecordsDecoded.Add(3)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m1.RecordsDecoded), 0.0001)
	assert.InDelta(t, 0.0, testutil.ToFloat64(m2.RecordsDecoded), 0.0001)
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.SeriesExported.Add(2)
	m.RunDuration.Observe(0.2)

	path := filepath.Join(t.TempDir(), "ghcn.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ghcn_etl_series_exported_total 2")
	assert.Contains(t, string(data), "ghcn_etl_run_duration_seconds_count 1")
}

func TestNewLogger(t *testing.T) {
	t.Run("json at debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "debug", "json")
		logger.Debug("series exported", "element", "PRCP")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "series exported", line["msg"])
		assert.Equal(t, "PRCP", line["element"])
	})

	t.Run("text at warn drops info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "warn", "text")
		logger.Info("hidden")
		logger.Warn("element skipped", "element", "BOGUS")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "element=BOGUS")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
	})
}
