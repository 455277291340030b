package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/x-xyz/contractmeta/base/backoff"
	"github.com/x-xyz/contractmeta/base/contenturi"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/base/log"
	"github.com/x-xyz/contractmeta/domain"
)

type WebResourceUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	ArUriReader   domain.WebResourceReaderRepository

	// Retries is the number of extra attempts after a transient failure
	Retries      int
	BackoffStart time.Duration
	BackoffLimit time.Duration
	// ExponentialBackoff doubles the wait after each attempt instead of growing it linearly
	ExponentialBackoff bool
	// RerouteGateways reads urls of well known public ipfs gateways through IpfsReader
	RerouteGateways bool
}

type webResourceUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	ipfsReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
	arUriReader   domain.WebResourceReaderRepository

	retries         int
	backoffStart    time.Duration
	backoffLimit    time.Duration
	exponential     bool
	rerouteGateways bool
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:      cfg.HttpReader,
		ipfsReader:      cfg.IpfsReader,
		dataUriReader:   cfg.DataUriReader,
		arUriReader:     cfg.ArUriReader,
		retries:         cfg.Retries,
		backoffStart:    cfg.BackoffStart,
		backoffLimit:    cfg.BackoffLimit,
		exponential:     cfg.ExponentialBackoff,
		rerouteGateways: cfg.RerouteGateways,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		// gateways answer with html error pages more often than with broken json
		c.WithFields(log.Fields{
			"url":         rawUrl,
			"contentType": mimetype.Detect(data).String(),
		}).Warn("invalid json")
		return nil, domain.ErrDecode
	}

	return data, nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	reader, target := u.route(rawUrl)
	if reader == nil {
		c.WithField("url", rawUrl).Warn("unsupported schema")
		return nil, &domain.FetchError{Url: rawUrl, Err: domain.ErrUnsupportedSchema}
	}

	var data []byte
	b := u.newBackoff()
	err := backoff.Retry(c, b, u.retries, isTransient, func() error {
		var err error
		data, err = reader.Get(c, target)
		return err
	})
	if err != nil {
		c.WithFields(log.Fields{
			"schema":  contenturi.SchemeOf(rawUrl),
			"url":     rawUrl,
			"retried": b.Count(),
			"err":     err,
		}).Error("failed to fetch")
		return nil, &domain.FetchError{Url: rawUrl, Err: err}
	}
	return data, nil
}

func (u *webResourceUseCase) newBackoff() *backoff.Backoff {
	if u.exponential {
		return backoff.NewExponential(u.backoffStart, u.backoffLimit)
	}
	return backoff.NewLinear(u.backoffStart, u.backoffLimit)
}

// route picks the reader for rawUrl and the argument that reader expects
func (u *webResourceUseCase) route(rawUrl string) (domain.WebResourceReaderRepository, string) {
	switch contenturi.SchemeOf(rawUrl) {
	case contenturi.SchemeIpfs, contenturi.SchemeCid:
		path, _ := contenturi.IpfsPath(rawUrl)
		return u.ipfsReader, path
	case contenturi.SchemeHttp, contenturi.SchemeHttps:
		if u.rerouteGateways {
			if path := gatewayIpfsPath(rawUrl); len(path) > 0 {
				return u.ipfsReader, path
			}
		}
		return u.httpReader, rawUrl
	case contenturi.SchemeData:
		return u.dataUriReader, rawUrl
	case contenturi.SchemeAr:
		return u.arUriReader, rawUrl
	}
	return nil, ""
}

// isTransient is true for failures worth one more attempt: network errors other than
// cancellation, and gateway errors.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *domain.HttpStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

var (
	publicGatewayPrefixes = []string{
		"https://gateway.pinata.cloud/ipfs/",
		"https://ipfs.io/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
		"https://ipfs.foundation.app/ipfs/",
	}
	dedicatedPinataRegex = regexp.MustCompile(`^https://[^/]+\.mypinata\.cloud/ipfs/`)
)

// gatewayIpfsPath returns "<cid>[/<path>]" when url points into a well known public gateway
func gatewayIpfsPath(url string) string {
	for _, p := range publicGatewayPrefixes {
		if strings.HasPrefix(url, p) {
			return strings.TrimPrefix(url, p)
		}
	}
	if loc := dedicatedPinataRegex.FindStringIndex(url); loc != nil {
		return url[loc[1]:]
	}
	return ""
}
