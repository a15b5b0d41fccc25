package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/handlecheck/pkg/metrics"
)

func TestNew(t *testing.T) {
	t.Run("nil registry", func(t *testing.T) {
		m, err := metrics.New(nil, metrics.DefaultConfig())
		assert.ErrorIs(t, err, metrics.ErrNilRegistry)
		assert.Nil(t, m)
	})

	t.Run("double registration fails", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := metrics.New(reg, metrics.DefaultConfig())
		require.NoError(t, err)

		_, err = metrics.New(reg, metrics.DefaultConfig())
		assert.ErrorIs(t, err, metrics.ErrFailedToRegister)
	})

	t.Run("empty config falls back to defaults", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m, err := metrics.New(reg, metrics.Config{})
		require.NoError(t, err)
		m.ObserveCheck("available", 0)

		count, err := testutil.GatherAndCount(reg, "handlecheck_username_checks_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestMetrics_ObserveCheck(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg, metrics.DefaultConfig())
	require.NoError(t, err)

	m.ObserveCheck("available", 0)
	m.ObserveCheck("taken", 14)
	m.ObserveCheck("taken", 3)
	m.ObserveCheck("invalid", 0)
	m.SetDirectorySize(42)

	expected := `
# HELP handlecheck_username_checks_total Total number of username checks by outcome.
# TYPE handlecheck_username_checks_total counter
handlecheck_username_checks_total{outcome="available"} 1
handlecheck_username_checks_total{outcome="invalid"} 1
handlecheck_username_checks_total{outcome="taken"} 2
# HELP handlecheck_username_directory_size Number of registered usernames loaded at startup.
# TYPE handlecheck_username_directory_size gauge
handlecheck_username_directory_size 42
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"handlecheck_username_checks_total",
		"handlecheck_username_directory_size",
	)
	assert.NoError(t, err)

	// Only the two taken checks are observed in the histogram.
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "handlecheck_username_suggestions" {
			h := mf.GetMetric()[0].GetHistogram()
			assert.Equal(t, uint64(2), h.GetSampleCount())
			assert.Equal(t, float64(17), h.GetSampleSum())
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	t.Run("writes gathered metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m, err := metrics.New(reg, metrics.DefaultConfig())
		require.NoError(t, err)
		m.ObserveCheck("restricted", 5)

		path := filepath.Join(t.TempDir(), "handlecheck.prom")
		require.NoError(t, metrics.WriteTextfile(path, reg))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `handlecheck_username_checks_total{outcome="restricted"} 1`)
	})

	t.Run("empty path", func(t *testing.T) {
		assert.ErrorIs(t, metrics.WriteTextfile("", prometheus.NewRegistry()), metrics.ErrEmptyPath)
	})

	t.Run("unwritable directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "out.prom")
		assert.ErrorIs(t, metrics.WriteTextfile(path, prometheus.NewRegistry()), metrics.ErrFailedToWrite)
	})
}
