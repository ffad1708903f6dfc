package contract

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/flashstake/flashstake-deploy/orchestrator"
	"github.com/pkg/errors"
)

type Handle struct {
	address common.Address
	tx      *types.Transaction
	backend bind.DeployBackend
}

func NewHandle(address common.Address, tx *types.Transaction, backend bind.DeployBackend) *Handle {
	return &Handle{address: address, tx: tx, backend: backend}
}

func (h *Handle) Address() string {
	return h.address.Hex()
}

func (h *Handle) TxHash() string {
	return h.tx.Hash().Hex()
}

// Deployed blocks until the creation transaction is mined. The deployment
// only counts as confirmed when the receipt succeeded and the address holds
// code.
func (h *Handle) Deployed(ctx context.Context) (orchestrator.Confirmation, error) {
	receipt, err := bind.WaitMined(ctx, h.backend, h.tx)
	if err != nil {
		return orchestrator.Confirmation{}, errors.Wrap(err, "failed waiting for the transaction to be mined")
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return orchestrator.Confirmation{}, errors.Errorf("transaction reverted in block %s", receipt.BlockNumber)
	}

	code, err := h.backend.CodeAt(ctx, h.address, receipt.BlockNumber)
	if err != nil {
		return orchestrator.Confirmation{}, errors.Wrapf(err, "failed to read code at %s", h.address.Hex())
	}
	if len(code) == 0 {
		return orchestrator.Confirmation{}, bind.ErrNoCodeAfterDeploy
	}

	return orchestrator.Confirmation{
		Address:     h.address.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}
