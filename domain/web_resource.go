package domain

import (
	"github.com/x-xyz/contractmeta/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceUseCase interface {
	// Get fetches the resource a pointer refers to. Failures are *FetchError.
	Get(ctx.Ctx, string) ([]byte, error)
	// GetJson is Get plus a JSON validity check, failing with ErrDecode.
	GetJson(ctx.Ctx, string) ([]byte, error)
}
