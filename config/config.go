package config

import (
	"encoding/hex"
	"net/url"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultNetworkName       = "localhost"
	DefaultNetworkConfigPath = "networks.yml"
	DefaultArtifactsPath     = "artifacts"
	DefaultRPCRateWindow     = "1s"

	localhostURL = "http://127.0.0.1:8545"
)

type Network struct {
	Name     string   `yaml:"-"`
	URL      string   `yaml:"url"`
	ChainID  uint64   `yaml:"chain_id"`
	Accounts []string `yaml:"accounts"`
}

// Config is everything a deployment run needs. It is built once at start-up
// and passed down explicitly.
type Config struct {
	ContractName   string
	ArtifactsPath  string
	Network        Network
	PrivateKey     string
	PushgatewayURL string
	RPCMaxRequests int
	RPCRateWindow  string
	Debug          bool
}

// Options are the raw values collected from flags and the environment.
type Options struct {
	ContractName      string
	NetworkName       string
	NetworkConfigPath string
	RPCURL            string
	ChainID           uint64
	PrivateKey        string
	ArtifactsPath     string
	PushgatewayURL    string
	RPCMaxRequests    int
	RPCRateWindow     string
	Debug             bool
}

var envReference = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

type networksFile struct {
	Networks map[string]Network `yaml:"networks"`
}

func Build(options Options) (Config, error) {
	networks, err := availableNetworks(options.NetworkConfigPath)
	if err != nil {
		return Config{}, err
	}

	networkName := defaultString(options.NetworkName, DefaultNetworkName)
	network, found := networks[networkName]
	if !found {
		return Config{}, errors.Errorf("network %q is not defined, available networks: %s", networkName, strings.Join(names(networks), ", "))
	}
	network.Name = networkName

	if options.RPCURL != "" {
		network.URL = options.RPCURL
	}
	if options.ChainID != 0 {
		network.ChainID = options.ChainID
	}

	privateKey := options.PrivateKey
	if privateKey == "" && len(network.Accounts) > 0 {
		privateKey = network.Accounts[0]
	}

	config := Config{
		ContractName:   options.ContractName,
		ArtifactsPath:  defaultString(options.ArtifactsPath, DefaultArtifactsPath),
		Network:        network,
		PrivateKey:     strings.TrimSpace(privateKey),
		PushgatewayURL: options.PushgatewayURL,
		RPCMaxRequests: options.RPCMaxRequests,
		RPCRateWindow:  defaultString(options.RPCRateWindow, DefaultRPCRateWindow),
		Debug:          options.Debug,
	}

	if err := validateConfig(config); err != nil {
		return Config{}, err
	}

	return config, nil
}

// ReadNetworks parses a YAML network file. ${VAR} references are expanded
// from the environment before parsing, any other $ is kept as is.
func ReadNetworks(filePath string) (map[string]Network, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read network config %s", filePath)
	}

	networks, err := readNetworks(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid network config %s", filePath)
	}
	return networks, nil
}

func readNetworks(data []byte) (map[string]Network, error) {
	var file networksFile
	if err := yaml.UnmarshalStrict(expandEnvReferences(data), &file); err != nil {
		return nil, err
	}

	for name, network := range file.Networks {
		network.Name = name
		network.Accounts = nonEmpty(network.Accounts)
		file.Networks[name] = network
	}
	return file.Networks, nil
}

func expandEnvReferences(data []byte) []byte {
	return envReference.ReplaceAllFunc(data, func(reference []byte) []byte {
		return []byte(os.Getenv(string(envReference.FindSubmatch(reference)[1])))
	})
}

func availableNetworks(networkConfigPath string) (map[string]Network, error) {
	networks := map[string]Network{
		DefaultNetworkName: {Name: DefaultNetworkName, URL: localhostURL},
	}

	if networkConfigPath == "" {
		return networks, nil
	}

	if _, err := os.Stat(networkConfigPath); os.IsNotExist(err) && networkConfigPath == DefaultNetworkConfigPath {
		return networks, nil
	}

	fromFile, err := ReadNetworks(networkConfigPath)
	if err != nil {
		return nil, err
	}
	for name, network := range fromFile {
		networks[name] = network
	}
	return networks, nil
}

func validateConfig(config Config) error {
	if config.ContractName == "" {
		return errors.New("invalid config: contract name is empty")
	}

	if config.Network.URL == "" {
		return errors.Errorf("invalid config: network %s has no url", config.Network.Name)
	}

	rpcURL, err := url.Parse(config.Network.URL)
	if err != nil || rpcURL.Host == "" {
		return errors.Errorf("invalid config: %q is not a valid rpc url", config.Network.URL)
	}
	switch rpcURL.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return errors.Errorf("invalid config: unsupported rpc url scheme %q", rpcURL.Scheme)
	}

	if config.PrivateKey == "" {
		return errors.Errorf("invalid config: no private key for network %s, set --private-key or DEPLOYER_PRIVATE_KEY", config.Network.Name)
	}

	if key, err := hex.DecodeString(strings.TrimPrefix(config.PrivateKey, "0x")); err != nil || len(key) != 32 {
		return errors.New("invalid config: private key must be 32 bytes of hex")
	}

	if config.PushgatewayURL != "" {
		if _, err := url.ParseRequestURI(config.PushgatewayURL); err != nil {
			return errors.Errorf("invalid config: %q is not a valid pushgateway url", config.PushgatewayURL)
		}
	}

	return nil
}

func names(networks map[string]Network) []string {
	var result []string
	for name := range networks {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func nonEmpty(values []string) []string {
	var result []string
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			result = append(result, value)
		}
	}
	return result
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
