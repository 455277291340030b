package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ContractMetadataABI covers the read-only collection level calls shared by ERC-721 and
// ERC-1155 contracts that publish contract-level metadata (contractURI).
var ContractMetadataABI abi.ABI

var contractMetadataABI = `[{"type":"function","name":"contractURI","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"string"}]},{"type":"function","name":"supportsInterface","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"bytes4","name":"interfaceID"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"name","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"string"}]},{"type":"function","name":"symbol","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"string"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(contractMetadataABI))
	if err != nil {
		panic("Failed to parse contract metadata abi")
	}
	ContractMetadataABI = _abi
}
