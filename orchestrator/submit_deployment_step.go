package orchestrator

import "context"

type SubmitDeploymentStep struct {
	logger Logger
}

func NewSubmitDeploymentStep(logger Logger) Step {
	return &SubmitDeploymentStep{logger: logger}
}

func (s *SubmitDeploymentStep) Run(ctx context.Context, session *Session) error {
	s.logger.Info("deploy", "Deploying %s", session.UnitName())

	handle, err := session.CurrentFactory().Deploy(ctx)
	if err != nil {
		return NewDeploymentError(err, "failed to deploy %s", session.UnitName())
	}

	s.logger.Info("deploy", "Submitted deployment transaction %s, contract address will be %s", handle.TxHash(), handle.Address())
	session.SetCurrentHandle(handle)
	return nil
}
