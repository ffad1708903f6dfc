package contract

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/flashstake/flashstake-deploy/artifact"
	"github.com/flashstake/flashstake-deploy/chain"
	"github.com/flashstake/flashstake-deploy/orchestrator"
	"github.com/pkg/errors"
)

// ArtifactResolver builds contract factories from compiled artifacts, the
// way a development framework hands out a factory for a contract name.
type ArtifactResolver struct {
	store   artifact.Store
	backend chain.Backend
	opts    *bind.TransactOpts
	logger  orchestrator.Logger
}

func NewArtifactResolver(store artifact.Store, backend chain.Backend, opts *bind.TransactOpts, logger orchestrator.Logger) *ArtifactResolver {
	return &ArtifactResolver{
		store:   store,
		backend: backend,
		opts:    opts,
		logger:  logger,
	}
}

func (r *ArtifactResolver) GetContractFactory(name string) (orchestrator.ContractFactory, error) {
	found, err := r.store.Find(name)
	if err != nil {
		return nil, err
	}

	if libraries := found.UnlinkedLibraries(); len(libraries) > 0 {
		return nil, errors.Errorf("%s is missing links for the following libraries: %s",
			found.FullyQualifiedName(), strings.Join(libraries, ", "))
	}

	bytecode, err := found.CreationCode()
	if err != nil {
		return nil, err
	}

	r.logger.Debug("deploy", "Using artifact %s (%d bytes of creation code)", found.FullyQualifiedName(), len(bytecode))

	return NewFactory(found, bytecode, r.backend, r.opts), nil
}
