package factory

import (
	"context"
	"io"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/flashstake/flashstake-deploy/artifact"
	"github.com/flashstake/flashstake-deploy/chain"
	"github.com/flashstake/flashstake-deploy/config"
	"github.com/flashstake/flashstake-deploy/contract"
	"github.com/flashstake/flashstake-deploy/metrics"
	"github.com/flashstake/flashstake-deploy/orchestrator"
	"github.com/flashstake/flashstake-deploy/ratelimiter"
)

type backendDialer func(ctx context.Context, rpcURL string) (chain.Backend, func(), error)

var injectableDial backendDialer = dialNode

func dialNode(ctx context.Context, rpcURL string) (chain.Backend, func(), error) {
	client, err := chain.Dial(ctx, rpcURL)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

// BuildDeployer connects to the configured network and assembles a
// Deployer for it. The returned function releases the connection.
func BuildDeployer(ctx context.Context, conf config.Config, stdout io.Writer) (*orchestrator.Deployer, func(), error) {
	return BuildDeployerWithLogger(ctx, conf, stdout, BuildLogger(conf.Debug))
}

func BuildDeployerWithLogger(ctx context.Context, conf config.Config, stdout io.Writer, logger boshlog.Logger) (*orchestrator.Deployer, func(), error) {
	rateLimiter, err := buildRateLimiter(conf)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("deploy", "Connecting to network %s at %s", conf.Network.Name, conf.Network.URL)
	node, closeNode, err := injectableDial(ctx, conf.Network.URL)
	if err != nil {
		return nil, nil, err
	}
	backend := chain.NewRateLimitedBackend(node, rateLimiter)

	chainID, err := chain.VerifyChainID(ctx, backend, conf.Network.ChainID)
	if err != nil {
		closeNode()
		return nil, nil, err
	}

	opts, err := contract.NewTransactor(conf.PrivateKey, chainID)
	if err != nil {
		closeNode()
		return nil, nil, err
	}
	logger.Info("deploy", "Deploying from %s to network %s (chain id %s)", opts.From.Hex(), conf.Network.Name, chainID)

	resolver := contract.NewArtifactResolver(artifact.NewDirectoryStore(conf.ArtifactsPath), backend, opts, logger)

	return orchestrator.NewDeployer(resolver, logger, stdout, buildMetricsRecorder(conf), time.Now), closeNode, nil
}

func buildRateLimiter(conf config.Config) (ratelimiter.RateLimiter, error) {
	if conf.RPCMaxRequests <= 0 {
		return ratelimiter.NewNoOpRateLimiter(), nil
	}
	return ratelimiter.NewRequestRateLimiter(conf.RPCMaxRequests, conf.RPCRateWindow)
}

func buildMetricsRecorder(conf config.Config) orchestrator.MetricsRecorder {
	if conf.PushgatewayURL == "" {
		return orchestrator.NewNoopMetricsRecorder()
	}
	return metrics.NewPushRecorder(conf.PushgatewayURL, conf.Network.Name, time.Now)
}
