package command

import (
	"context"
	"os"

	"github.com/flashstake/flashstake-deploy/cli/flags"
	"github.com/flashstake/flashstake-deploy/config"
	"github.com/flashstake/flashstake-deploy/factory"
	"github.com/urfave/cli"
)

type DeployCommand struct {
	contractName string
}

func NewDeployCommand(contractName string) DeployCommand {
	return DeployCommand{contractName: contractName}
}

func (d DeployCommand) Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Value: config.DefaultNetworkName,
			Usage: "Name of the network to deploy to",
		},
		cli.StringFlag{
			Name:  "network-config",
			Value: config.DefaultNetworkConfigPath,
			Usage: "Path to a YAML file defining networks",
		},
		cli.StringFlag{
			Name:   "rpc-url",
			Usage:  "JSON-RPC endpoint, overrides the network's url",
			EnvVar: "DEPLOY_RPC_URL",
		},
		cli.Uint64Flag{
			Name:   "chain-id",
			Usage:  "Expected chain id, the deployment is refused if the node reports another",
			EnvVar: "DEPLOY_CHAIN_ID",
		},
		cli.StringFlag{
			Name:   "private-key",
			Usage:  "Hex encoded key of the deploying account",
			EnvVar: "DEPLOYER_PRIVATE_KEY",
		},
		cli.StringFlag{
			Name:   "artifacts",
			Value:  config.DefaultArtifactsPath,
			Usage:  "Path to the compiled contract artifacts",
			EnvVar: "DEPLOY_ARTIFACTS",
		},
		cli.StringFlag{
			Name:   "pushgateway-url",
			Usage:  "Prometheus Pushgateway to report the deployment outcome to",
			EnvVar: "PUSHGATEWAY_URL",
		},
		cli.IntFlag{
			Name:  "rpc-max-requests",
			Usage: "Maximum number of JSON-RPC requests per rate window, 0 disables rate limiting",
		},
		cli.StringFlag{
			Name:  "rpc-rate-window",
			Value: config.DefaultRPCRateWindow,
			Usage: "Rate limiting window for JSON-RPC requests",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs and stack traces",
		},
	}
}

func (d DeployCommand) Action(c *cli.Context) error {
	if err := flags.Validate([]string{"network", "artifacts"}, c); err != nil {
		return err
	}

	trapSigint()

	conf, err := config.Build(d.options(c))
	if err != nil {
		return redCliError(err)
	}

	ctx := context.Background()
	deployer, closeNode, err := factory.BuildDeployer(ctx, conf, os.Stdout)
	if err != nil {
		return redCliError(err)
	}
	defer closeNode()

	result := deployer.Deploy(ctx, d.contractName)

	return processError(result.Err, conf.Debug)
}

func (d DeployCommand) options(c *cli.Context) config.Options {
	return config.Options{
		ContractName:      d.contractName,
		NetworkName:       c.String("network"),
		NetworkConfigPath: c.String("network-config"),
		RPCURL:            c.String("rpc-url"),
		ChainID:           c.Uint64("chain-id"),
		PrivateKey:        c.String("private-key"),
		ArtifactsPath:     c.String("artifacts"),
		PushgatewayURL:    c.String("pushgateway-url"),
		RPCMaxRequests:    c.Int("rpc-max-requests"),
		RPCRateWindow:     c.String("rpc-rate-window"),
		Debug:             c.Bool("debug"),
	}
}
