package repository

import (
	"net/http"
	"time"

	"github.com/x-xyz/contractmeta/base/contenturi"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
)

type ipfsGatewayReaderRepo struct {
	getter
	gateway string
}

// NewIpfsGatewayReaderRepo reads "<cid>[/<path>]" through an http gateway such as https://ipfs.io/ipfs/
func NewIpfsGatewayReaderRepo(c http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{
		getter:  getter{client: c, ctxTimeout: timeout},
		gateway: contenturi.GatewayBase(gateway),
	}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, path string) ([]byte, error) {
	return r.get(c, r.gateway+path)
}
