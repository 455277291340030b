package repository

import (
	"net/http"
	"time"

	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
)

type httpReaderRepo struct {
	getter
}

func NewHttpReaderRepo(client http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &httpReaderRepo{getter{client: client, ctxTimeout: timeout, headers: headers}}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	return r.get(c, url)
}
