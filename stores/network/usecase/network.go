package usecase

import (
	"sort"
	"strconv"
	"strings"

	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
	"golang.org/x/xerrors"
)

type impl struct {
	networks  []domain.Network
	byKey     map[string]*domain.Network
	defaultId string
}

// New indexes networks by id, alias and chain id. defaultId must name one of them.
func New(networks []domain.Network, defaultId string) (domain.NetworkUseCase, error) {
	im := &impl{
		networks:  make([]domain.Network, len(networks)),
		byKey:     make(map[string]*domain.Network),
		defaultId: defaultId,
	}
	copy(im.networks, networks)
	sort.Slice(im.networks, func(i, j int) bool { return im.networks[i].ChainId < im.networks[j].ChainId })

	for i := range im.networks {
		n := &im.networks[i]
		keys := append([]string{n.Id, strconv.Itoa(int(n.ChainId))}, n.Aliases...)
		for _, k := range keys {
			k = normalizeKey(k)
			if prev, ok := im.byKey[k]; ok && prev.Id != n.Id {
				return nil, xerrors.Errorf("network key %q used by %s and %s", k, prev.Id, n.Id)
			}
			im.byKey[k] = n
		}
	}
	if _, ok := im.byKey[normalizeKey(defaultId)]; !ok {
		return nil, xerrors.Errorf("default network %q is not configured: %w", defaultId, domain.ErrUnsupportedNetwork)
	}
	return im, nil
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func (im *impl) List(_ bCtx.Ctx) []domain.Network {
	res := make([]domain.Network, len(im.networks))
	copy(res, im.networks)
	return res
}

func (im *impl) Find(_ bCtx.Ctx, key string) (*domain.Network, error) {
	if normalizeKey(key) == "" {
		key = im.defaultId
	}
	n, ok := im.byKey[normalizeKey(key)]
	if !ok {
		return nil, domain.ErrUnsupportedNetwork
	}
	res := *n
	return &res, nil
}

func (im *impl) Default(c bCtx.Ctx) (*domain.Network, error) {
	return im.Find(c, im.defaultId)
}
