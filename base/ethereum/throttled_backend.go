package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/x-xyz/contractmeta/base/log"
)

// Backend is the part of *ethclient.Client used for contract reads
type Backend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// ThrottledBackend lets at most n calls reach the rpc at the same time
type ThrottledBackend struct {
	Backend
	tokens chan int
}

func NewThrottledBackend(backend Backend, n int) *ThrottledBackend {
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledBackend{
		Backend: backend,
		tokens:  tokens,
	}
}

func (c *ThrottledBackend) BlockNumber(ctx context.Context) (uint64, error) {
	token, err := c.before(ctx)
	if err != nil {
		return 0, err
	}
	defer c.after(token)
	return c.Backend.BlockNumber(ctx)
}

func (c *ThrottledBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.Backend.CallContract(ctx, msg, number)
}

func (c *ThrottledBackend) before(ctx context.Context) (int, error) {
	now := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithField("waited", time.Since(now)).Debug("throttle ctx done")
		return 0, ctx.Err()
	case token := <-c.tokens:
		if waited := time.Since(now); waited > 100*time.Millisecond {
			log.Log().WithFields(log.Fields{"token": token, "left": len(c.tokens), "waited": waited}).Debug("throttled")
		}
		return token, nil
	}
}

func (c *ThrottledBackend) after(token int) {
	c.tokens <- token
}
