package artifact

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

const HardhatFormat = "hh-sol-artifact-1"

// Artifact is a compiled contract as written by the Hardhat compiler task.
type Artifact struct {
	Format         string                                `json:"_format"`
	ContractName   string                                `json:"contractName"`
	SourceName     string                                `json:"sourceName"`
	RawABI         json.RawMessage                       `json:"abi"`
	Bytecode       string                                `json:"bytecode"`
	LinkReferences map[string]map[string][]LinkReference `json:"linkReferences"`

	ABI abi.ABI `json:"-"`
}

type LinkReference struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

func Parse(data []byte) (Artifact, error) {
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return Artifact{}, errors.Wrap(err, "invalid artifact")
	}

	if artifact.ContractName == "" {
		return Artifact{}, errors.New("invalid artifact: contractName is empty")
	}

	rawABI := artifact.RawABI
	if len(rawABI) == 0 {
		rawABI = []byte("[]")
	}
	parsedABI, err := abi.JSON(bytes.NewReader(rawABI))
	if err != nil {
		return Artifact{}, errors.Wrapf(err, "invalid abi in artifact for %s", artifact.ContractName)
	}
	artifact.ABI = parsedABI

	return artifact, nil
}

func (a Artifact) FullyQualifiedName() string {
	return a.SourceName + ":" + a.ContractName
}

// CreationCode returns the decoded deployment bytecode. Contracts without
// bytecode (interfaces, abstract contracts) cannot be deployed.
func (a Artifact) CreationCode() ([]byte, error) {
	if a.Bytecode == "" || a.Bytecode == "0x" {
		return nil, errors.Errorf("%s has no bytecode, abstract contracts and interfaces cannot be deployed", a.ContractName)
	}

	code, err := hexutil.Decode(a.Bytecode)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid bytecode in artifact for %s", a.ContractName)
	}
	return code, nil
}

// UnlinkedLibraries lists the fully qualified names of libraries the
// bytecode still has placeholders for.
func (a Artifact) UnlinkedLibraries() []string {
	var libraries []string
	for source, contracts := range a.LinkReferences {
		for name := range contracts {
			libraries = append(libraries, source+":"+name)
		}
	}
	sort.Strings(libraries)
	return libraries
}
