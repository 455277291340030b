package chain

import (
	"errors"
	"sort"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	bEthereum "github.com/x-xyz/contractmeta/base/ethereum"
	"github.com/x-xyz/contractmeta/base/log"
	"github.com/x-xyz/contractmeta/domain"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
	// MaxConcurrentCalls bounds the in-flight calls per rpc, 0 for no bound
	MaxConcurrentCalls int
}

type Backend = bEthereum.Backend

type Client interface {
	// Call packs method and params with _abi, calls addr at the latest block and unpacks the result
	Call(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	BlockNumber(bCtx.Ctx, domain.ChainId) (uint64, error)
	ChainIds() []domain.ChainId
}

type clientImpl struct {
	backends map[domain.ChainId]Backend
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	backends := make(map[domain.ChainId]Backend)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		if cfg.MaxConcurrentCalls > 0 {
			backends[chainId] = bEthereum.NewThrottledBackend(client, cfg.MaxConcurrentCalls)
			continue
		}
		backends[chainId] = client
	}
	return NewClientWithBackends(backends), anyerr
}

func NewClientWithBackends(backends map[domain.ChainId]Backend) Client {
	return &clientImpl{backends: backends}
}

func (c *clientImpl) backend(chainId domain.ChainId) (Backend, error) {
	b, ok := c.backends[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return b, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.backend(chainId)
	if err != nil {
		return nil, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"addr":    addr,
			"method":  method,
			"err":     err,
		}).Warn("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"addr":    addr,
			"method":  method,
			"err":     err,
		}).Warn("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx, chainId domain.ChainId) (uint64, error) {
	client, err := c.backend(chainId)
	if err != nil {
		return 0, err
	}
	return client.BlockNumber(ctx)
}

func (c *clientImpl) ChainIds() []domain.ChainId {
	ids := make([]domain.ChainId, 0, len(c.backends))
	for id := range c.backends {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
