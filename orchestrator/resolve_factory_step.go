package orchestrator

import "context"

type ResolveFactoryStep struct {
	resolver FactoryResolver
	logger   Logger
}

func NewResolveFactoryStep(resolver FactoryResolver, logger Logger) Step {
	return &ResolveFactoryStep{resolver: resolver, logger: logger}
}

func (s *ResolveFactoryStep) Run(ctx context.Context, session *Session) error {
	session.SetState(StateDeploying)
	s.logger.Info("deploy", "Resolving contract factory for %s", session.UnitName())

	factory, err := s.resolver.GetContractFactory(session.UnitName())
	if err != nil {
		return NewDeploymentError(err, "failed to resolve contract factory for %s", session.UnitName())
	}

	session.SetCurrentFactory(factory)
	return nil
}
