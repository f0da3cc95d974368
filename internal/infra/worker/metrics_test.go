package worker

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestWorkerMetrics_RecordRun(t *testing.T) {
	m := newTestMetrics()

	m.RecordRun("success", 1.5)
	m.RecordRun("failure", 0.2)
	m.RecordRun("success", 0.7)

	if got := testutil.ToFloat64(m.RunsTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("success runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RunsTotal.WithLabelValues("failure")); got != 1 {
		t.Errorf("failure runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.LastSuccessTimestamp); got == 0 {
		t.Error("last success timestamp not set")
	}
	if got := testutil.CollectAndCount(m.RunDurationSeconds); got != 1 {
		t.Errorf("duration histogram series = %d, want 1", got)
	}
}

func TestWorkerMetrics_RecordComments(t *testing.T) {
	m := newTestMetrics()

	m.RecordComments("enriched", 3)
	m.RecordComments("enriched", 2)
	m.RecordComments("skipped", 0)

	if got := testutil.ToFloat64(m.CommentsTotal.WithLabelValues("enriched")); got != 5 {
		t.Errorf("enriched = %v, want 5", got)
	}
	if got := testutil.CollectAndCount(m.CommentsTotal); got != 1 {
		t.Errorf("series = %d, want 1 (zero counts are not recorded)", got)
	}
}
