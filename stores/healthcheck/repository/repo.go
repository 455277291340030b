package repository

import (
	"time"

	"github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/base/log"
	hcdomain "github.com/x-xyz/contractmeta/domain/healthcheck"
	"github.com/x-xyz/contractmeta/service/chain"
	"golang.org/x/xerrors"
)

const pingTimeout = 2 * time.Second

type impl struct {
	chainClient chain.Client
}

// New creates a HealthCheckRepo probing every configured chain rpc
func New(chainClient chain.Client) hcdomain.HealthCheckRepo {
	return &impl{
		chainClient: chainClient,
	}
}

func (im *impl) PingChains(context ctx.Ctx) error {
	for _, chainId := range im.chainClient.ChainIds() {
		ctx, cancel := ctx.WithTimeout(context, pingTimeout)
		block, err := im.chainClient.BlockNumber(ctx, chainId)
		cancel()
		if err != nil {
			context.WithFields(log.Fields{
				"chainId": chainId,
				"err":     err,
			}).Error("ping chain error")
			return xerrors.Errorf("chain %d: %w", chainId, err)
		}
		context.WithFields(log.Fields{
			"chainId": chainId,
			"block":   block,
		}).Debug("chain ok")
	}
	return nil
}
