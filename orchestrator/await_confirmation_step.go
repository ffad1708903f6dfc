package orchestrator

import (
	"context"

	"github.com/dustin/go-humanize"
)

type AwaitConfirmationStep struct {
	logger Logger
}

func NewAwaitConfirmationStep(logger Logger) Step {
	return &AwaitConfirmationStep{logger: logger}
}

func (s *AwaitConfirmationStep) Run(ctx context.Context, session *Session) error {
	handle := session.CurrentHandle()
	s.logger.Info("deploy", "Waiting for transaction %s to be mined", handle.TxHash())

	confirmation, err := handle.Deployed(ctx)
	if err != nil {
		return NewDeploymentError(err, "deployment of %s in transaction %s was not confirmed", session.UnitName(), handle.TxHash())
	}

	s.logger.Debug("deploy", "Transaction %s mined in block %d using %s gas",
		handle.TxHash(), confirmation.BlockNumber, humanize.Comma(int64(confirmation.GasUsed)))
	session.SetConfirmation(confirmation)
	return nil
}
