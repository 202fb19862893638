// Copyright 2025 The Deployah Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ObservabilityHook receives every event passing through an ObservableLogger.
type ObservabilityHook interface {
	// OnLog is called whenever a log event occurs
	OnLog(ctx context.Context, level log.Level, msg string, keyvals []interface{})

	// OnError is called whenever an error-level log occurs
	OnError(ctx context.Context, msg string, err error, keyvals []interface{})

	// OnMetric is called to record custom metrics
	OnMetric(ctx context.Context, name string, value float64, tags map[string]string)

	// Close cleans up resources used by the hook
	Close() error
}

// Metric is an aggregated measurement.
type Metric struct {
	Name      string            `json:"name"`
	Value     float64           `json:"value"`
	Tags      map[string]string `json:"tags,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Count     int64             `json:"count"`
}

// MetricsCollector aggregates metrics by name and tag set.
type MetricsCollector struct {
	mu      sync.RWMutex
	metrics map[string]*Metric
	now     func() time.Time
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metric),
		now:     time.Now,
	}
}

// OnLog implements ObservabilityHook.
func (mc *MetricsCollector) OnLog(ctx context.Context, level log.Level, msg string, keyvals []interface{}) {
	mc.record(MetricLogs, 1, map[string]string{
		"level": level.String(),
	})
}

// OnError implements ObservabilityHook.
func (mc *MetricsCollector) OnError(ctx context.Context, msg string, err error, keyvals []interface{}) {
	tags := map[string]string{}
	for i := 0; i < len(keyvals)-1; i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		if value, ok := keyvals[i+1].(string); ok && (key == "component" || key == "cmd") {
			tags[key] = value
		}
	}
	mc.record(MetricErrors, 1, tags)
}

// OnMetric implements ObservabilityHook.
func (mc *MetricsCollector) OnMetric(ctx context.Context, name string, value float64, tags map[string]string) {
	mc.record(name, value, tags)
}

func (mc *MetricsCollector) record(name string, value float64, tags map[string]string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.metrics == nil {
		return
	}

	key := metricKey(name, tags)
	now := mc.now()
	if existing, ok := mc.metrics[key]; ok {
		existing.Value += value
		existing.Count++
		existing.Timestamp = now
		return
	}
	mc.metrics[key] = &Metric{
		Name:      name,
		Value:     value,
		Tags:      copyTags(tags),
		Timestamp: now,
		Count:     1,
	}
}

// Snapshot returns copies of all metrics ordered by name and tags.
func (mc *MetricsCollector) Snapshot() []Metric {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	keys := make([]string, 0, len(mc.metrics))
	for key := range mc.metrics {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	out := make([]Metric, 0, len(keys))
	for _, key := range keys {
		m := *mc.metrics[key]
		m.Tags = copyTags(m.Tags)
		out = append(out, m)
	}
	return out
}

// Total sums the values recorded under name across all tag sets.
func (mc *MetricsCollector) Total(name string) float64 {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	var total float64
	for _, m := range mc.metrics {
		if m.Name == name {
			total += m.Value
		}
	}
	return total
}

// Close implements ObservabilityHook.
func (mc *MetricsCollector) Close() error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.metrics = nil
	return nil
}

// metricKey is stable regardless of map iteration order.
func metricKey(name string, tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(name)
	for _, k := range keys {
		b.WriteString(":" + k + "=" + tags[k])
	}
	return b.String()
}

func copyTags(tags map[string]string) map[string]string {
	if tags == nil {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}

// ObservableLogger wraps a logger with observability hooks.
type ObservableLogger struct {
	logger *log.Logger
	hooks  []ObservabilityHook
	mu     sync.RWMutex
}

// NewObservableLogger creates a new observable logger.
func NewObservableLogger(logger *log.Logger) *ObservableLogger {
	return &ObservableLogger{
		logger: logger,
		hooks:  make([]ObservabilityHook, 0),
	}
}

// Logger returns the wrapped logger.
func (ol *ObservableLogger) Logger() *log.Logger {
	return ol.logger
}

// AddHook adds an observability hook.
func (ol *ObservableLogger) AddHook(hook ObservabilityHook) {
	ol.mu.Lock()
	defer ol.mu.Unlock()
	ol.hooks = append(ol.hooks, hook)
}

// Collector returns the first metrics collector attached as a hook, or nil.
func (ol *ObservableLogger) Collector() *MetricsCollector {
	for _, hook := range ol.snapshotHooks() {
		if mc, ok := hook.(*MetricsCollector); ok {
			return mc
		}
	}
	return nil
}

// Debug logs a debug message and notifies hooks.
func (ol *ObservableLogger) Debug(msg string, keyvals ...interface{}) {
	ol.logger.Debug(msg, keyvals...)
	ol.notify(log.DebugLevel, msg, keyvals)
}

// Info logs an info message and notifies hooks.
func (ol *ObservableLogger) Info(msg string, keyvals ...interface{}) {
	ol.logger.Info(msg, keyvals...)
	ol.notify(log.InfoLevel, msg, keyvals)
}

// Warn logs a warning message and notifies hooks.
func (ol *ObservableLogger) Warn(msg string, keyvals ...interface{}) {
	ol.logger.Warn(msg, keyvals...)
	ol.notify(log.WarnLevel, msg, keyvals)
}

// Error logs an error message and notifies hooks, passing the "err" value
// along to OnError.
func (ol *ObservableLogger) Error(msg string, keyvals ...interface{}) {
	ol.logger.Error(msg, keyvals...)
	ol.notify(log.ErrorLevel, msg, keyvals)

	var err error
	for i := 0; i < len(keyvals)-1; i += 2 {
		if key, ok := keyvals[i].(string); ok && key == "err" {
			if e, ok := keyvals[i+1].(error); ok {
				err = e
				break
			}
		}
	}
	for _, hook := range ol.snapshotHooks() {
		hook.OnError(context.Background(), msg, err, keyvals)
	}
}

// With returns a new logger with additional key-value pairs sharing the same hooks.
func (ol *ObservableLogger) With(keyvals ...interface{}) *ObservableLogger {
	return &ObservableLogger{
		logger: ol.logger.With(keyvals...),
		hooks:  ol.snapshotHooks(),
	}
}

// Metric records a custom metric.
func (ol *ObservableLogger) Metric(ctx context.Context, name string, value float64, tags map[string]string) {
	for _, hook := range ol.snapshotHooks() {
		hook.OnMetric(ctx, name, value, tags)
	}
}

func (ol *ObservableLogger) notify(level log.Level, msg string, keyvals []interface{}) {
	if level < ol.logger.GetLevel() {
		return
	}
	for _, hook := range ol.snapshotHooks() {
		hook.OnLog(context.Background(), level, msg, keyvals)
	}
}

func (ol *ObservableLogger) snapshotHooks() []ObservabilityHook {
	ol.mu.RLock()
	defer ol.mu.RUnlock()
	return slices.Clone(ol.hooks)
}

// Close closes all observability hooks.
func (ol *ObservableLogger) Close() error {
	ol.mu.Lock()
	defer ol.mu.Unlock()

	var errs []error
	for _, hook := range ol.hooks {
		if err := hook.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	ol.hooks = nil
	return errors.Join(errs...)
}
