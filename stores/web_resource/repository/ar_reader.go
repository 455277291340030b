package repository

import (
	"net/http"
	"strings"
	"time"

	"github.com/x-xyz/contractmeta/base/contenturi"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
	"golang.org/x/xerrors"
)

type arReaderRepo struct {
	getter
	gateway string
}

func NewArReaderRepo(client http.Client, gateway string, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &arReaderRepo{
		getter:  getter{client: client, ctxTimeout: timeout, headers: headers},
		gateway: contenturi.GatewayBase(gateway),
	}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, contenturi.ArPrefix) {
		return nil, xerrors.Errorf("invalid ar uri: %s", uri)
	}
	return r.get(c, contenturi.NormalizeWith(uri, contenturi.Gateways{Arweave: r.gateway}))
}
