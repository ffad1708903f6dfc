package integration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

const deployerKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

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

func writeArtifact(workDir string) {
	dir := filepath.Join(workDir, "artifacts", "contracts", "FlashStakeProtocol.sol")
	Expect(os.MkdirAll(dir, 0755)).To(Succeed())
	Expect(os.WriteFile(filepath.Join(dir, "FlashStakeProtocol.json"), []byte(flashStakeArtifact), 0644)).To(Succeed())
}

func expectedContractAddress() string {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(deployerKey, "0x"))
	Expect(err).NotTo(HaveOccurred())
	return crypto.CreateAddress(crypto.PubkeyToAddress(key.PublicKey), 0).Hex()
}

var _ = Describe("deploy", func() {
	var (
		workDir string
		node    *JSONRPCNode
		env     []string
	)

	BeforeEach(func() {
		workDir = GinkgoT().TempDir()
		node = NewJSONRPCNode(1337)
		DeferCleanup(node.Close)
		env = []string{"DEPLOY_RPC_URL=" + node.URL()}
	})

	It("prints the version", func() {
		session := binary.Run(workDir, env, "version")

		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Out).To(gbytes.Say(version))
	})

	It("describes its options", func() {
		session := binary.Run(workDir, env, "--help")

		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Out).To(gbytes.Say("--private-key"))
		Expect(session.Out).To(gbytes.Say("DEPLOYER_PRIVATE_KEY"))
	})

	Context("when no private key is configured", func() {
		It("fails without contacting the node", func() {
			session := binary.Run(workDir, env)

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("no private key for network localhost"))
			Expect(session.Out.Contents()).To(BeEmpty())
			Expect(node.Requests()).To(Equal(0))
		})
	})

	Context("when the private key comes from a .env file", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(filepath.Join(workDir, ".env"), []byte("DEPLOYER_PRIVATE_KEY="+deployerKey+"\n"), 0600)).To(Succeed())
		})

		Context("and the contracts have been compiled", func() {
			BeforeEach(func() {
				writeArtifact(workDir)
			})

			It("deploys the contract and prints only its address on stdout", func() {
				session := binary.Run(workDir, env)

				Expect(session.ExitCode()).To(Equal(0))
				Expect(string(session.Out.Contents())).To(Equal("FlashStakeProtocol contract deployed to: " + expectedContractAddress() + "\n"))
				Expect(session.Err).To(gbytes.Say("Submitted deployment transaction 0x"))
			})

			It("submits exactly one transaction and waits for its receipt", func() {
				session := binary.Run(workDir, env)

				Expect(session.ExitCode()).To(Equal(0))
				Expect(node.Calls("eth_sendRawTransaction")).To(Equal(1))
				Expect(node.Calls("eth_getTransactionReceipt")).To(BeNumerically(">=", 1))
				Expect(node.Calls("eth_getCode")).To(Equal(1))
			})
		})

		It("fails when the contracts have not been compiled", func() {
			session := binary.Run(workDir, env)

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("failed to resolve contract factory for FlashStakeProtocol"))
			Expect(session.Out.Contents()).To(BeEmpty())
		})

		It("refuses to deploy to an unexpected chain", func() {
			session := binary.Run(workDir, env, "--chain-id", "5")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("chain id mismatch: configured 5, node reports 1337"))
		})

		It("never logs the private key", func() {
			session := binary.Run(workDir, env, "--debug")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(string(session.Err.Contents())).NotTo(ContainSubstring(deployerKey[2:]))
		})
	})

	Context("when a network is selected from the network config", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(filepath.Join(workDir, "networks.yml"), []byte(`networks:
  testnet:
    url: ${TESTNET_RPC_URL}
    chain_id: 1337
    accounts:
    - `+deployerKey+`
`), 0600)).To(Succeed())
			env = []string{"TESTNET_RPC_URL=" + node.URL()}
		})

		It("uses the network's endpoint and account", func() {
			session := binary.Run(workDir, env, "--network", "testnet", "--artifacts", "build/artifacts")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say(`to network testnet \(chain id 1337\)`))
			Expect(session.Err).To(gbytes.Say("artifacts directory build/artifacts is not readable"))
			Expect(node.Requests()).To(BeNumerically(">", 0))
		})

		It("fails for an unknown network", func() {
			session := binary.Run(workDir, env, "--network", "mainnet")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say(`network "mainnet" is not defined, available networks: localhost, testnet`))
		})
	})

	Context("when the node cannot be reached", func() {
		It("fails", func() {
			session := binary.Run(workDir, []string{"DEPLOYER_PRIVATE_KEY=" + deployerKey}, "--rpc-url", "http://127.0.0.1:1")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("failed to fetch chain id"))
		})
	})
})
