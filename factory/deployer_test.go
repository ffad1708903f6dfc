package factory_test

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/flashstake/flashstake-deploy/config"
	"github.com/flashstake/flashstake-deploy/factory"
	"github.com/flashstake/flashstake-deploy/orchestrator"
	"github.com/onsi/gomega/gbytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const flashStakeArtifact = `{
  "_format": "hh-sol-artifact-1",
  "contractName": "FlashStakeProtocol",
  "sourceName": "contracts/FlashStakeProtocol.sol",
  "abi": [{"inputs":[],"stateMutability":"nonpayable","type":"constructor"}],
  "bytecode": "0x6001600c60003960016000f300",
  "deployedBytecode": "0x00",
  "linkReferences": {},
  "deployedLinkReferences": {}
}`

var _ = Describe("BuildDeployer", func() {
	var (
		sim       *simulated.Backend
		key       *ecdsa.PrivateKey
		conf      config.Config
		stdout    *gbytes.Buffer
		logOutput *gbytes.Buffer
		ctx       context.Context
	)

	BeforeEach(func() {
		var err error
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		sim = simulated.NewBackend(types.GenesisAlloc{
			crypto.PubkeyToAddress(key.PublicKey): {Balance: new(big.Int).Mul(big.NewInt(10), big.NewInt(1e18))},
		})
		DeferCleanup(sim.Close)
		factory.SetBackend(sim.Client())
		DeferCleanup(factory.ResetBackend)

		artifactsPath := GinkgoT().TempDir()
		sourceDir := filepath.Join(artifactsPath, "contracts", "FlashStakeProtocol.sol")
		Expect(os.MkdirAll(sourceDir, 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(sourceDir, "FlashStakeProtocol.json"), []byte(flashStakeArtifact), 0644)).To(Succeed())

		conf = config.Config{
			ContractName:  "FlashStakeProtocol",
			ArtifactsPath: artifactsPath,
			Network:       config.Network{Name: "simulated", URL: "http://127.0.0.1:8545"},
			PrivateKey:    hex.EncodeToString(crypto.FromECDSA(key)),
			RPCRateWindow: "1s",
		}
		stdout = gbytes.NewBuffer()
		logOutput = gbytes.NewBuffer()
		ctx = context.Background()
	})

	build := func() (*orchestrator.Deployer, func(), error) {
		return factory.BuildDeployerWithLogger(ctx, conf, stdout, factory.BuildLoggerWithCustomWriter(logOutput, true))
	}

	mineUntil := func(done <-chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
				sim.Commit()
			}
		}
	}

	It("deploys the contract from its artifact", func() {
		deployer, closeNode, err := build()
		Expect(err).NotTo(HaveOccurred())
		defer closeNode()

		done := make(chan struct{})
		go mineUntil(done)

		result := deployer.Deploy(ctx, "FlashStakeProtocol")
		close(done)

		expectedAddress := crypto.CreateAddress(crypto.PubkeyToAddress(key.PublicKey), 0).Hex()
		Expect(result.Succeeded()).To(BeTrue())
		Expect(result.Address).To(Equal(expectedAddress))
		Expect(stdout).To(gbytes.Say("FlashStakeProtocol contract deployed to: " + expectedAddress))
		Expect(logOutput).To(gbytes.Say("Deploying from " + crypto.PubkeyToAddress(key.PublicKey).Hex() + " to network simulated \\(chain id 1337\\)"))
	})

	It("rate limits requests to the node when asked to", func() {
		conf.RPCMaxRequests = 100

		_, closeNode, err := build()

		Expect(err).NotTo(HaveOccurred())
		closeNode()
	})

	It("fails when the node is on another chain", func() {
		conf.Network.ChainID = 5

		_, _, err := build()

		Expect(err).To(MatchError("chain id mismatch: configured 5, node reports 1337"))
	})

	It("fails for an invalid rate window", func() {
		conf.RPCMaxRequests = 10
		conf.RPCRateWindow = "often"

		_, _, err := build()

		Expect(err).To(MatchError(ContainSubstring("often")))
	})

	It("fails when the node cannot be reached", func() {
		factory.ResetBackend()
		conf.Network.URL = "http://127.0.0.1:1"

		_, _, err := build()

		Expect(err).To(MatchError(ContainSubstring("failed to fetch chain id")))
	})
})
