package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level log.Level) (*ObservableLogger, *MetricsCollector, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: level})
	ol := NewObservableLogger(logger)
	mc := NewMetricsCollector()
	ol.AddHook(mc)
	return ol, mc, &buf
}

func TestMetricsCollectorAggregates(t *testing.T) {
	ol, mc, _ := newTestLogger(log.DebugLevel)

	ol.Metric(context.Background(), "steps.selected", 1, map[string]string{"source": "key", "mode": "run"})
	ol.Metric(context.Background(), "steps.selected", 1, map[string]string{"mode": "run", "source": "key"})
	ol.Metric(context.Background(), "steps.selected", 1, map[string]string{"source": "tap"})

	snapshot := mc.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "steps.selected", snapshot[0].Name)
	assert.Equal(t, int64(2), snapshot[0].Count)
	assert.Equal(t, 2.0, snapshot[0].Value)
	assert.Equal(t, 3.0, mc.Total("steps.selected"))
	assert.Zero(t, mc.Total("missing"))
}

func TestObservableLoggerCountsLevels(t *testing.T) {
	ol, mc, buf := newTestLogger(log.InfoLevel)

	ol.Debug("hidden")
	ol.Info("shown", "position", 1)
	ol.Warn("careful")

	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Equal(t, 2.0, mc.Total(MetricLogs))
}

func TestObservableLoggerErrorHook(t *testing.T) {
	ol, mc, _ := newTestLogger(log.InfoLevel)

	ol.Error("render failed", "err", errors.New("boom"), "component", "tui")

	snapshot := mc.Snapshot()
	var found bool
	for _, m := range snapshot {
		if m.Name == MetricErrors {
			found = true
			assert.Equal(t, map[string]string{"component": "tui"}, m.Tags)
		}
	}
	assert.True(t, found)
}

func TestObservableLoggerWithSharesHooks(t *testing.T) {
	ol, mc, buf := newTestLogger(log.InfoLevel)

	child := ol.With("cmd", "run")
	child.Info("started")

	assert.Contains(t, buf.String(), "cmd=run")
	assert.Equal(t, 1.0, mc.Total(MetricLogs))
	assert.Same(t, mc, child.Collector())
}

func TestCloseStopsRecording(t *testing.T) {
	ol, mc, _ := newTestLogger(log.InfoLevel)

	require.NoError(t, ol.Close())
	mc.OnMetric(context.Background(), "late", 1, nil)

	assert.Empty(t, mc.Snapshot())
	assert.Nil(t, ol.Collector())
}

func TestContextRoundTrip(t *testing.T) {
	ol, _, _ := newTestLogger(log.InfoLevel)
	ctx := WithObservableLogger(context.Background(), ol)

	assert.Same(t, ol, FromObservable(ctx))
	assert.Same(t, ol.Logger(), From(ctx))
	assert.Nil(t, From(context.Background()))
	assert.Nil(t, FromObservable(context.Background()))
}
