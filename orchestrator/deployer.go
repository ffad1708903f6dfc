package orchestrator

import (
	"context"
	"io"
	"time"
)

func NewDeployer(resolver FactoryResolver, logger Logger, stdout io.Writer, recorder MetricsRecorder, nowFunc func() time.Time) *Deployer {
	resolveFactory := NewResolveFactoryStep(resolver, logger)
	submitDeployment := NewSubmitDeploymentStep(logger)
	awaitConfirmation := NewAwaitConfirmationStep(logger)
	reportSuccess := NewReportSuccessStep(stdout)
	reportFailure := NewReportFailureStep(logger)
	recordMetrics := NewRecordMetricsStep(recorder, logger, nowFunc)

	workflow := NewWorkflow()
	workflow.StartWith(resolveFactory).OnSuccess(submitDeployment).OnFailure(reportFailure)
	workflow.Add(submitDeployment).OnSuccess(awaitConfirmation).OnFailure(reportFailure)
	workflow.Add(awaitConfirmation).OnSuccess(reportSuccess).OnFailure(reportFailure)
	workflow.Add(reportSuccess).OnSuccess(recordMetrics).OnFailure(reportFailure)
	workflow.Add(reportFailure).OnSuccessOrFailure(recordMetrics)
	workflow.Add(recordMetrics)

	return &Deployer{
		workflow: workflow,
		logger:   logger,
		nowFunc:  nowFunc,
	}
}

type Deployer struct {
	workflow *Workflow
	logger   Logger
	nowFunc  func() time.Time
}

// Deploy makes exactly one attempt to deploy the named unit and waits for
// it to be confirmed.
func (d Deployer) Deploy(ctx context.Context, unitName string) DeploymentResult {
	session := NewSession(unitName)
	session.SetStartTime(d.nowFunc())
	d.logger.Debug("deploy", "Starting deployment run %s", session.RunID())

	errs := d.workflow.Run(ctx, session)
	session.SetState(StateTerminated)

	return NewDeploymentResult(unitName, session.RunID(), session.Confirmation().Address, errs)
}
