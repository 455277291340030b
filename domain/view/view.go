package view

import (
	"time"

	"github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
)

// View is the state of one displayed contract. Only the outcome of the latest
// submission is ever observable through it.
type View struct {
	Id         string          `json:"id"`
	Network    string          `json:"network,omitempty"`
	Address    domain.Address  `json:"address,omitempty"`
	Generation uint64          `json:"generation"`
	Outcome    *domain.Outcome `json:"outcome"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type UseCase interface {
	Create(ctx.Ctx) (*View, error)
	Get(ctx.Ctx, string) (*View, error)
	Delete(ctx.Ctx, string) error
	// Submit supersedes whatever the view was resolving and starts resolving address
	Submit(c ctx.Ctx, id string, network string, address domain.Address) (*View, error)
	// Wait blocks until the latest submission is terminal or c ends
	Wait(ctx.Ctx, string) (*View, error)
}
