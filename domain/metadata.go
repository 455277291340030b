package domain

import (
	"strings"

	"github.com/x-xyz/contractmeta/base/ctx"
)

// MetadataPointer is the raw contractURI value: a bare CID, ipfs://<cid>[/<path>],
// an http(s) URL, or a data: URI.
type MetadataPointer string

func (p MetadataPointer) IsEmpty() bool {
	return len(strings.TrimSpace(string(p))) == 0
}

func (p MetadataPointer) String() string {
	return string(p)
}

// ResolvedMetadata holds the display fields of a contract metadata document.
// Upstream documents are unvalidated, so every field is optional.
type ResolvedMetadata struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	// Image is the value as published, ImageUrl its fetchable form
	Image        *string `json:"image,omitempty"`
	ImageUrl     *string `json:"imageUrl,omitempty"`
	Symbol       *string `json:"symbol,omitempty"`
	ExternalLink *string `json:"externalLink,omitempty"`
}

func (m *ResolvedMetadata) HasImage() bool {
	return m != nil && m.ImageUrl != nil && len(*m.ImageUrl) > 0
}

type MetadataUseCase interface {
	// Resolve never fails: errors are classified into the returned Outcome
	Resolve(ctx.Ctx, MetadataPointer) *Outcome
	ResolveContract(c ctx.Ctx, network string, address Address) *Outcome
	ResolveContracts(c ctx.Ctx, network string, addresses []Address) []*Outcome
}
