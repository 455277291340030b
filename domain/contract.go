package domain

import (
	"github.com/x-xyz/contractmeta/base/ctx"
)

// ContractUriReader reads the contract-level metadata pointer, contractURI(), from chain
type ContractUriReader interface {
	ReadContractUri(ctx.Ctx, ChainId, Address) (string, error)
}
