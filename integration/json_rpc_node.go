package integration

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/onsi/gomega/ghttp"
)

const (
	zeroHash    = "0x0000000000000000000000000000000000000000000000000000000000000000"
	zeroAddress = "0x0000000000000000000000000000000000000000"
	blockNumber = "0x1"
)

var emptyBloom = "0x" + strings.Repeat("00", types.BloomByteLength)

// JSONRPCNode is a fake pre-London node. It accepts one contract creation
// at a time, mines it immediately and serves its receipt and code.
type JSONRPCNode struct {
	server  *ghttp.Server
	chainID *big.Int

	mutex    sync.Mutex
	calls    map[string]int
	receipts map[common.Hash]map[string]interface{}
	code     map[common.Address]bool
}

func NewJSONRPCNode(chainID int64) *JSONRPCNode {
	node := &JSONRPCNode{
		server:   ghttp.NewServer(),
		chainID:  big.NewInt(chainID),
		calls:    map[string]int{},
		receipts: map[common.Hash]map[string]interface{}{},
		code:     map[common.Address]bool{},
	}
	node.server.RouteToHandler("POST", "/", node.handle)
	return node
}

func (n *JSONRPCNode) URL() string {
	return n.server.URL()
}

func (n *JSONRPCNode) Close() {
	n.server.Close()
}

func (n *JSONRPCNode) Requests() int {
	return len(n.server.ReceivedRequests())
}

func (n *JSONRPCNode) Calls(method string) int {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.calls[method]
}

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

func (n *JSONRPCNode) handle(w http.ResponseWriter, req *http.Request) {
	var request rpcRequest
	response := rpcResponse{JSONRPC: "2.0"}

	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		response.Error = &rpcError{Code: -32700, Message: err.Error()}
	} else {
		response.ID = request.ID
		result, err := n.call(request)
		if err != nil {
			response.Error = &rpcError{Code: -32000, Message: err.Error()}
		} else {
			response.Result = result
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (n *JSONRPCNode) call(request rpcRequest) (interface{}, error) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.calls[request.Method]++

	switch request.Method {
	case "eth_chainId":
		return hexutil.EncodeBig(n.chainID), nil
	case "eth_getBlockByNumber":
		return latestHeader(), nil
	case "eth_gasPrice":
		return "0x3b9aca00", nil
	case "eth_estimateGas":
		return "0x186a0", nil
	case "eth_getTransactionCount":
		return "0x0", nil
	case "eth_sendRawTransaction":
		return n.sendRawTransaction(request.Params)
	case "eth_getTransactionReceipt":
		var hash common.Hash
		if err := unmarshalParam(request.Params, 0, &hash); err != nil {
			return nil, err
		}
		return n.receipts[hash], nil
	case "eth_getCode":
		var address common.Address
		if err := unmarshalParam(request.Params, 0, &address); err != nil {
			return nil, err
		}
		if n.code[address] {
			return "0x00", nil
		}
		return "0x", nil
	default:
		return nil, fmt.Errorf("the method %s does not exist/is not available", request.Method)
	}
}

func (n *JSONRPCNode) sendRawTransaction(params []json.RawMessage) (interface{}, error) {
	var raw hexutil.Bytes
	if err := unmarshalParam(params, 0, &raw); err != nil {
		return nil, err
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	if tx.To() != nil {
		return nil, fmt.Errorf("only contract creation is supported")
	}

	sender, err := types.Sender(types.LatestSignerForChainID(n.chainID), tx)
	if err != nil {
		return nil, err
	}
	contractAddress := crypto.CreateAddress(sender, tx.Nonce())

	n.code[contractAddress] = true
	n.receipts[tx.Hash()] = map[string]interface{}{
		"type":              hexutil.Uint64(tx.Type()),
		"status":            "0x1",
		"cumulativeGasUsed": "0xd2f0",
		"gasUsed":           "0xd2f0",
		"logsBloom":         emptyBloom,
		"logs":              []interface{}{},
		"transactionHash":   tx.Hash(),
		"transactionIndex":  "0x0",
		"contractAddress":   contractAddress,
		"blockHash":         zeroHash,
		"blockNumber":       blockNumber,
		"effectiveGasPrice": "0x3b9aca00",
	}
	return tx.Hash(), nil
}

func latestHeader() map[string]interface{} {
	return map[string]interface{}{
		"parentHash":       zeroHash,
		"sha3Uncles":       types.EmptyUncleHash,
		"miner":            zeroAddress,
		"stateRoot":        zeroHash,
		"transactionsRoot": types.EmptyTxsHash,
		"receiptsRoot":     types.EmptyReceiptsHash,
		"logsBloom":        emptyBloom,
		"difficulty":       "0x1",
		"number":           blockNumber,
		"gasLimit":         "0x1c9c380",
		"gasUsed":          "0x0",
		"timestamp":        "0x65e1a3c0",
		"extraData":        "0x",
		"mixHash":          zeroHash,
		"nonce":            "0x0000000000000000",
		"hash":             zeroHash,
	}
}

func unmarshalParam(params []json.RawMessage, index int, value interface{}) error {
	if len(params) <= index {
		return fmt.Errorf("missing parameter %d", index)
	}
	return json.Unmarshal(params[index], value)
}
