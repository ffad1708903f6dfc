package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

// Backend is everything a deployment needs from a node.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", rpcURL)
	}
	return client, nil
}

// VerifyChainID returns the chain id reported by the node, failing when it
// differs from the expected one. An expected id of 0 accepts any chain.
func VerifyChainID(ctx context.Context, backend Backend, expected uint64) (*big.Int, error) {
	actual, err := backend.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch chain id")
	}

	if expected != 0 && (!actual.IsUint64() || actual.Uint64() != expected) {
		return nil, errors.Errorf("chain id mismatch: configured %d, node reports %s", expected, actual)
	}
	return actual, nil
}
