package contract

import (
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/contractmeta/base/abi"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
	"github.com/x-xyz/contractmeta/service/chain"
	"golang.org/x/xerrors"
)

type Standard string

const (
	StandardErc721  Standard = "erc721"
	StandardErc1155 Standard = "erc1155"
	StandardUnknown Standard = "unknown"
)

var (
	erc721InterfaceId  = interfaceId("80ac58cd")
	erc1155InterfaceId = interfaceId("d9b67a26")
)

func interfaceId(hex string) [4]byte {
	var id [4]byte
	copy(id[:], common.Hex2Bytes(hex))
	return id
}

// ContractMetadata reads collection level data of a token contract
type ContractMetadata struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewContractMetadata(chainService chain.Client) *ContractMetadata {
	return &ContractMetadata{
		chainService: chainService,
		abi:          baseabi.ContractMetadataABI,
	}
}

func (e *ContractMetadata) call(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, method string, params ...interface{}) (interface{}, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr.ToLowerStr()), e.abi, method, params...)
	if err != nil {
		return nil, err
	}
	if len(unpacked) == 0 {
		return nil, xerrors.Errorf("empty result of %s", method)
	}
	return unpacked[0], nil
}

func (e *ContractMetadata) ContractURI(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error) {
	res, err := e.call(ctx, chainId, addr, "contractURI")
	if err != nil {
		return "", err
	}
	uri, ok := res.(string)
	if !ok {
		return "", xerrors.Errorf("unexpected contractURI result %T", res)
	}
	// some contracts pad the returned string
	return strings.Trim(uri, " \x00"), nil
}

// ReadContractUri implements domain.ContractUriReader
func (e *ContractMetadata) ReadContractUri(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error) {
	return e.ContractURI(ctx, chainId, addr)
}

func (e *ContractMetadata) supportsInterface(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, id [4]byte) (bool, error) {
	res, err := e.call(ctx, chainId, addr, "supportsInterface", id)
	if err != nil {
		return false, err
	}
	supported, ok := res.(bool)
	return ok && supported, nil
}

func (e *ContractMetadata) Supports721Interface(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (bool, error) {
	return e.supportsInterface(ctx, chainId, addr, erc721InterfaceId)
}

func (e *ContractMetadata) Supports1155Interface(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (bool, error) {
	return e.supportsInterface(ctx, chainId, addr, erc1155InterfaceId)
}

// Standard detects the token standard through ERC-165
func (e *ContractMetadata) Standard(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (Standard, error) {
	if ok, err := e.Supports721Interface(ctx, chainId, addr); err != nil {
		return StandardUnknown, err
	} else if ok {
		return StandardErc721, nil
	}
	if ok, err := e.Supports1155Interface(ctx, chainId, addr); err != nil {
		return StandardUnknown, err
	} else if ok {
		return StandardErc1155, nil
	}
	return StandardUnknown, nil
}
