package repository

import (
	"io"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/base/log"
	"github.com/x-xyz/contractmeta/domain"
	"golang.org/x/xerrors"
)

// metadata documents are small, anything bigger is not one
const maxBodySize = 8 << 20

var ErrBodyTooLarge = xerrors.New("response body too large")

type getter struct {
	client     http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

// get performs a single GET. Any non-2xx response is a *domain.HttpStatusError.
func (g *getter) get(c bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, g.ctxTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range g.headers {
		req.Header.Set(k, v)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Warn("unexpected status code")
		return nil, &domain.HttpStatusError{Url: url, StatusCode: resp.StatusCode}
	}
	body, err := readLimited(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}

// readLimited reads r to the end, failing with ErrBodyTooLarge past maxBodySize
func readLimited(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxBodySize {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}
