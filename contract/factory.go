package contract

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/flashstake/flashstake-deploy/artifact"
	"github.com/flashstake/flashstake-deploy/chain"
	"github.com/flashstake/flashstake-deploy/orchestrator"
)

type Factory struct {
	artifact artifact.Artifact
	bytecode []byte
	backend  chain.Backend
	opts     *bind.TransactOpts
}

func NewFactory(found artifact.Artifact, bytecode []byte, backend chain.Backend, opts *bind.TransactOpts) *Factory {
	return &Factory{
		artifact: found,
		bytecode: bytecode,
		backend:  backend,
		opts:     opts,
	}
}

// Deploy signs and submits the creation transaction without constructor
// arguments. It does not wait for the transaction to be mined.
func (f *Factory) Deploy(ctx context.Context) (orchestrator.DeploymentHandle, error) {
	opts := *f.opts
	opts.Context = ctx

	address, tx, _, err := bind.DeployContract(&opts, f.artifact.ABI, f.bytecode, f.backend)
	if err != nil {
		return nil, err
	}

	return NewHandle(address, tx, f.backend), nil
}
