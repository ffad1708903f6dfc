package orchestrator

import (
	"context"
	"time"
)

type RecordMetricsStep struct {
	recorder MetricsRecorder
	logger   Logger
	nowFunc  func() time.Time
}

func NewRecordMetricsStep(recorder MetricsRecorder, logger Logger, nowFunc func() time.Time) Step {
	return &RecordMetricsStep{recorder: recorder, logger: logger, nowFunc: nowFunc}
}

// Run never fails, metrics problems are only logged.
func (s *RecordMetricsStep) Run(ctx context.Context, session *Session) error {
	duration := s.nowFunc().Sub(session.StartTime())
	succeeded := session.State() == StateSucceeded

	if err := s.recorder.Record(session.UnitName(), session.RunID(), succeeded, duration); err != nil {
		s.logger.Warn("deploy", "Failed to record deployment metrics: %s", err)
	}
	return nil
}
