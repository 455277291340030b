package domain

import (
	"github.com/x-xyz/contractmeta/base/ctx"
)

// Network is one entry of the fixed set of chains a contract can be looked up on
type Network struct {
	Id      string   `json:"id"`
	Name    string   `json:"name"`
	ChainId ChainId  `json:"chainId"`
	RpcUrl  string   `json:"-"`
	Aliases []string `json:"aliases,omitempty"`
}

type NetworkUseCase interface {
	List(ctx.Ctx) []Network
	// Find matches an id, an alias or a decimal chain id
	Find(ctx.Ctx, string) (*Network, error)
	Default(ctx.Ctx) (*Network, error)
}
