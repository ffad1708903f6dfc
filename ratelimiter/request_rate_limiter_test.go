package ratelimiter_test

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/flashstake/flashstake-deploy/chain"
	"github.com/flashstake/flashstake-deploy/ratelimiter"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RequestRateLimiter", func() {
	Context("in front of a node", func() {
		var sim *simulated.Backend

		BeforeEach(func() {
			key, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			sim = simulated.NewBackend(types.GenesisAlloc{
				crypto.PubkeyToAddress(key.PublicKey): {Balance: big.NewInt(1e18)},
			})
			DeferCleanup(sim.Close)
		})

		It("holds back requests beyond the quota until the window passes", func(ctx context.Context) {
			rateLimiter, err := ratelimiter.NewRequestRateLimiter(3, "500ms")
			Expect(err).NotTo(HaveOccurred())
			backend := chain.NewRateLimitedBackend(sim.Client(), rateLimiter)

			answered := make(chan *big.Int, 6)
			for i := 0; i < 6; i++ {
				go func() {
					defer GinkgoRecover()
					chainID, err := backend.ChainID(ctx)
					Expect(err).NotTo(HaveOccurred())
					answered <- chainID
				}()
			}

			Eventually(answered).Should(HaveLen(3))
			Consistently(answered, 300*time.Millisecond).Should(HaveLen(3))
			Eventually(answered, time.Second).Should(HaveLen(6))
		}, SpecTimeout(5*time.Second))

		It("lets requests within the quota through at once", func(ctx context.Context) {
			rateLimiter, err := ratelimiter.NewRequestRateLimiter(10, "1m")
			Expect(err).NotTo(HaveOccurred())
			backend := chain.NewRateLimitedBackend(sim.Client(), rateLimiter)

			for i := 0; i < 10; i++ {
				chainID, err := backend.ChainID(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(chainID.Uint64()).To(Equal(uint64(1337)))
			}
		}, SpecTimeout(5*time.Second))
	})

	DescribeTable("rejects settings outside what RPC quotas need",
		func(maxRequests int, window, message string) {
			_, err := ratelimiter.NewRequestRateLimiter(maxRequests, window)

			Expect(err).To(MatchError(ContainSubstring(message)))
		},
		Entry("no requests", 0, "1s", "rpc max requests must be between 1 and 1000, got 0"),
		Entry("too many requests", 1001, "1s", "rpc max requests must be between 1 and 1000, got 1001"),
		Entry("a window that is too short", 10, "5ms", "rpc rate window must be between 10ms and 1m0s, got 5ms"),
		Entry("a window that is too long", 10, "2m", "rpc rate window must be between 10ms and 1m0s, got 2m0s"),
		Entry("a window that is not a duration", 10, "1yxz", `invalid rpc rate window: time: unknown unit "yxz" in duration "1yxz"`),
	)

	Describe("NoOpRateLimiter", func() {
		It("never blocks", func() {
			rateLimiter := ratelimiter.NewNoOpRateLimiter()
			for i := 0; i < 1000; i++ {
				rateLimiter.RateLimit()
			}
		})
	})
})
