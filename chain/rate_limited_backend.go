package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/flashstake/flashstake-deploy/ratelimiter"
)

// RateLimitedBackend waits on the rate limiter before every request made
// while deploying and confirming a contract.
type RateLimitedBackend struct {
	Backend
	rateLimiter ratelimiter.RateLimiter
}

func NewRateLimitedBackend(backend Backend, rateLimiter ratelimiter.RateLimiter) *RateLimitedBackend {
	return &RateLimitedBackend{Backend: backend, rateLimiter: rateLimiter}
}

func (b *RateLimitedBackend) ChainID(ctx context.Context) (*big.Int, error) {
	b.rateLimiter.RateLimit()
	return b.Backend.ChainID(ctx)
}

func (b *RateLimitedBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	b.rateLimiter.RateLimit()
	return b.Backend.CodeAt(ctx, contract, blockNumber)
}

func (b *RateLimitedBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	b.rateLimiter.RateLimit()
	return b.Backend.HeaderByNumber(ctx, number)
}

func (b *RateLimitedBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	b.rateLimiter.RateLimit()
	return b.Backend.PendingCodeAt(ctx, account)
}

func (b *RateLimitedBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	b.rateLimiter.RateLimit()
	return b.Backend.PendingNonceAt(ctx, account)
}

func (b *RateLimitedBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	b.rateLimiter.RateLimit()
	return b.Backend.SuggestGasPrice(ctx)
}

func (b *RateLimitedBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	b.rateLimiter.RateLimit()
	return b.Backend.SuggestGasTipCap(ctx)
}

func (b *RateLimitedBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	b.rateLimiter.RateLimit()
	return b.Backend.EstimateGas(ctx, call)
}

func (b *RateLimitedBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.rateLimiter.RateLimit()
	return b.Backend.SendTransaction(ctx, tx)
}

func (b *RateLimitedBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.rateLimiter.RateLimit()
	return b.Backend.TransactionReceipt(ctx, txHash)
}
