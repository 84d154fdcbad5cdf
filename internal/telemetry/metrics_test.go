package telemetry

import (
	"strings"
	"testing"
	"time"
)

func TestCountersAndGauges(t *testing.T) {
	m := NewMetricsCollector()

	m.IncrementCounter(MetricCacheHits, 1)
	m.IncrementCounter(MetricCacheHits, 2)
	if got := m.GetCounter(MetricCacheHits); got != 3 {
		t.Errorf("Expected counter 3, got %d", got)
	}

	m.SetGauge(MetricCacheSize, 42)
	if got := m.GetGauge(MetricCacheSize); got != 42 {
		t.Errorf("Expected gauge 42, got %v", got)
	}
}

func TestTimers(t *testing.T) {
	m := NewMetricsCollector()

	m.RecordTimer(MetricResponseTimeUpstream, 10*time.Millisecond)
	m.RecordTimer(MetricResponseTimeUpstream, 30*time.Millisecond)

	if avg := m.GetTimerAverage(MetricResponseTimeUpstream); avg != 20*time.Millisecond {
		t.Errorf("Expected average 20ms, got %v", avg)
	}
	if p95 := m.GetTimerP95(MetricResponseTimeUpstream); p95 != 30*time.Millisecond {
		t.Errorf("Expected p95 30ms, got %v", p95)
	}

	// Unknown timer reports zero.
	if avg := m.GetTimerAverage("no.such.timer"); avg != 0 {
		t.Errorf("Expected zero average for unknown timer, got %v", avg)
	}
}

func TestReportAndReset(t *testing.T) {
	m := NewMetricsCollector()
	m.IncrementCounter(MetricGatewayRequests, 7)
	m.RecordTimer(MetricResponseTimeUpstream, time.Millisecond)
	m.RecordTimestamp("last_request")

	report := m.GetReport()
	if !strings.Contains(report, MetricGatewayRequests) {
		t.Errorf("Expected report to mention %s, got: %s", MetricGatewayRequests, report)
	}

	m.Reset()
	if got := m.GetCounter(MetricGatewayRequests); got != 0 {
		t.Errorf("Expected counter reset to 0, got %d", got)
	}
}
