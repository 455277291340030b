package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/x-xyz/contractmeta/base/contenturi"
	"github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
	"golang.org/x/xerrors"
)

type dataUriReaderRepo struct {
}

func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

// Get decodes data:[<mediatype>][;base64],<data>
func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, contenturi.DataPrefix) {
		return nil, xerrors.Errorf("invalid data uri")
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, contenturi.DataPrefix), ",", 2)
	if len(parts) < 2 || len(parts[1]) == 0 {
		return nil, xerrors.Errorf("no data part provided")
	}

	if strings.HasSuffix(parts[0], ";base64") {
		payload := strings.TrimSpace(parts[1])
		if b, err := base64.StdEncoding.DecodeString(payload); err == nil {
			return b, nil
		}
		// some contracts drop the padding
		return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	}
	// plain text, possibly percent-encoded
	if s, err := url.PathUnescape(parts[1]); err == nil {
		return []byte(s), nil
	}
	return []byte(parts[1]), nil
}
