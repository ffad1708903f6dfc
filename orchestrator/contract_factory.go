package orchestrator

import "context"

//counterfeiter:generate -o fakes/fake_factory_resolver.go . FactoryResolver
type FactoryResolver interface {
	GetContractFactory(unitName string) (ContractFactory, error)
}

//counterfeiter:generate -o fakes/fake_contract_factory.go . ContractFactory
type ContractFactory interface {
	Deploy(ctx context.Context) (DeploymentHandle, error)
}

// DeploymentHandle refers to a deployment that has been submitted but is
// not yet known to be confirmed.
//
//counterfeiter:generate -o fakes/fake_deployment_handle.go . DeploymentHandle
type DeploymentHandle interface {
	Address() string
	TxHash() string
	Deployed(ctx context.Context) (Confirmation, error)
}

type Confirmation struct {
	Address     string
	BlockNumber uint64
	GasUsed     uint64
}
