package orchestrator

import (
	"context"
	"fmt"
	"io"
)

type ReportSuccessStep struct {
	stdout io.Writer
}

func NewReportSuccessStep(stdout io.Writer) Step {
	return &ReportSuccessStep{stdout: stdout}
}

func (s *ReportSuccessStep) Run(ctx context.Context, session *Session) error {
	_, err := fmt.Fprintf(s.stdout, "%s contract deployed to: %s\n", session.UnitName(), session.Confirmation().Address)
	if err != nil {
		return NewDeploymentError(err, "failed to report deployment of %s", session.UnitName())
	}

	session.SetState(StateSucceeded)
	return nil
}

type ReportFailureStep struct {
	logger Logger
}

func NewReportFailureStep(logger Logger) Step {
	return &ReportFailureStep{logger: logger}
}

func (s *ReportFailureStep) Run(ctx context.Context, session *Session) error {
	session.SetState(StateFailed)
	s.logger.Error("deploy", "Deployment of %s failed in run %s", session.UnitName(), session.RunID())
	return nil
}
