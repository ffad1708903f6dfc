package chain_test

import (
	"context"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/flashstake/flashstake-deploy/chain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type countingRateLimiter struct {
	calls int32
}

func (c *countingRateLimiter) RateLimit() {
	atomic.AddInt32(&c.calls, 1)
}

func (c *countingRateLimiter) Calls() int {
	return int(atomic.LoadInt32(&c.calls))
}

var _ = Describe("Backend", func() {
	var (
		sim     *simulated.Backend
		account common.Address
		ctx     context.Context
	)

	BeforeEach(func() {
		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		account = crypto.PubkeyToAddress(key.PublicKey)

		sim = simulated.NewBackend(types.GenesisAlloc{
			account: {Balance: big.NewInt(1e18)},
		})
		DeferCleanup(sim.Close)
		ctx = context.Background()
	})

	Describe("VerifyChainID", func() {
		It("returns the node's chain id when it matches", func() {
			chainID, err := chain.VerifyChainID(ctx, sim.Client(), 1337)

			Expect(err).NotTo(HaveOccurred())
			Expect(chainID.Uint64()).To(Equal(uint64(1337)))
		})

		It("accepts any chain when none is configured", func() {
			chainID, err := chain.VerifyChainID(ctx, sim.Client(), 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(chainID.Uint64()).To(Equal(uint64(1337)))
		})

		It("fails when the chain ids differ", func() {
			_, err := chain.VerifyChainID(ctx, sim.Client(), 11155111)

			Expect(err).To(MatchError("chain id mismatch: configured 11155111, node reports 1337"))
		})
	})

	Describe("RateLimitedBackend", func() {
		var (
			rateLimiter *countingRateLimiter
			backend     *chain.RateLimitedBackend
		)

		BeforeEach(func() {
			rateLimiter = &countingRateLimiter{}
			backend = chain.NewRateLimitedBackend(sim.Client(), rateLimiter)
		})

		It("rate limits before each request", func() {
			_, err := backend.ChainID(ctx)
			Expect(err).NotTo(HaveOccurred())

			nonce, err := backend.PendingNonceAt(ctx, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(nonce).To(BeZero())

			_, err = backend.HeaderByNumber(ctx, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(rateLimiter.Calls()).To(Equal(3))
		})

		It("is usable wherever a backend is expected", func() {
			var _ chain.Backend = backend

			_, err := chain.VerifyChainID(ctx, backend, 1337)

			Expect(err).NotTo(HaveOccurred())
			Expect(rateLimiter.Calls()).To(Equal(1))
		})
	})
})
