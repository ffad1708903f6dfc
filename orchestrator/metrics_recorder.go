package orchestrator

import "time"

//counterfeiter:generate -o fakes/fake_metrics_recorder.go . MetricsRecorder
type MetricsRecorder interface {
	Record(unitName, runID string, succeeded bool, duration time.Duration) error
}

type NoopMetricsRecorder struct{}

func NewNoopMetricsRecorder() MetricsRecorder {
	return NoopMetricsRecorder{}
}

func (NoopMetricsRecorder) Record(string, string, bool, time.Duration) error {
	return nil
}
