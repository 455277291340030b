package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/viney-shih/goroutines"
	"github.com/x-xyz/contractmeta/base/contenturi"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/base/log"
	"github.com/x-xyz/contractmeta/base/metrics"
	"github.com/x-xyz/contractmeta/base/ptr"
	"github.com/x-xyz/contractmeta/base/validator"
	"github.com/x-xyz/contractmeta/domain"
	"golang.org/x/xerrors"
)

const defaultBatchWorkers = 8

var (
	errEmptyContractUri = xerrors.New("contractURI is empty")
	errBatchAborted     = xerrors.New("batch resolution aborted")
)

type MetadataUseCaseCfg struct {
	WebResource    domain.WebResourceUseCase
	ContractReader domain.ContractUriReader
	Network        domain.NetworkUseCase
	Gateways       contenturi.Gateways
	// BatchWorkers bounds the concurrent resolutions of ResolveContracts
	BatchWorkers int
}

type metadataUseCase struct {
	webResource    domain.WebResourceUseCase
	contractReader domain.ContractUriReader
	network        domain.NetworkUseCase
	gateways       contenturi.Gateways
	batchWorkers   int
	metrics        metrics.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	workers := cfg.BatchWorkers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	return &metadataUseCase{
		webResource:    cfg.WebResource,
		contractReader: cfg.ContractReader,
		network:        cfg.Network,
		gateways:       cfg.Gateways,
		batchWorkers:   workers,
		metrics:        metrics.New("metadata"),
	}
}

func (u *metadataUseCase) Resolve(c bCtx.Ctx, pointer domain.MetadataPointer) *domain.Outcome {
	defer u.metrics.BumpTime("resolve.time").End()
	o := u.resolve(c, pointer)
	u.bumpOutcome(o)
	return o
}

func (u *metadataUseCase) resolve(c bCtx.Ctx, pointer domain.MetadataPointer) *domain.Outcome {
	pointer = domain.MetadataPointer(strings.TrimSpace(pointer.String()))
	if pointer.IsEmpty() {
		return domain.NoAddressOutcome()
	}

	metadataUrl := contenturi.NormalizeWith(pointer.String(), u.gateways)
	data, err := u.webResource.GetJson(c, pointer.String())
	if err != nil {
		reason := domain.ReasonFetchError
		if errors.Is(err, domain.ErrDecode) {
			reason = domain.ReasonDecodeError
		}
		c.WithFields(log.Fields{
			"pointer": pointer,
			"reason":  reason,
			"err":     err,
		}).Warn("webResource.GetJson failed")
		o := domain.FailureOutcome(pointer, reason, err)
		o.MetadataUrl = metadataUrl
		return o
	}

	md, err := u.decode(data)
	if err != nil {
		c.WithFields(log.Fields{
			"pointer": pointer,
			"err":     err,
		}).Warn("failed to decode metadata")
		o := domain.FailureOutcome(pointer, domain.ReasonDecodeError, err)
		o.MetadataUrl = metadataUrl
		return o
	}

	return domain.SuccessOutcome(pointer, metadataUrl, md)
}

// decode extracts the display fields. Only the top level has to be an object, a field
// of an unexpected type is treated as absent.
func (u *metadataUseCase) decode(data []byte) (*domain.ResolvedMetadata, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: null document", domain.ErrDecode)
	}

	md := &domain.ResolvedMetadata{
		Name:         stringField(doc, "name"),
		Description:  stringField(doc, "description"),
		Symbol:       stringField(doc, "symbol"),
		ExternalLink: stringField(doc, "external_link"),
	}
	if image := stringField(doc, "image"); image != nil && len(strings.TrimSpace(*image)) > 0 {
		md.Image = image
		md.ImageUrl = ptr.String(contenturi.NormalizeWith(*image, u.gateways))
	}
	return md, nil
}

func stringField(doc map[string]json.RawMessage, key string) *string {
	raw, ok := doc[key]
	if !ok {
		return nil
	}
	// null unmarshals into *string as nil
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return s
}

func (u *metadataUseCase) ResolveContract(c bCtx.Ctx, network string, address domain.Address) *domain.Outcome {
	if address.IsUnset() {
		return domain.NoAddressOutcome().WithContract(network, address)
	}

	n, err := u.network.Find(c, network)
	if err != nil {
		c.WithFields(log.Fields{
			"network": network,
			"err":     err,
		}).Warn("network.Find failed")
		return u.contractFailure(network, address, err)
	}
	if !validator.IsValidAddress(string(address)) {
		return u.contractFailure(n.Id, address, domain.ErrInvalidAddress)
	}

	uri, err := u.contractReader.ReadContractUri(c, n.ChainId, address)
	if err != nil {
		c.WithFields(log.Fields{
			"chainId": n.ChainId,
			"address": address,
			"err":     err,
		}).Warn("contractReader.ReadContractUri failed")
		return u.contractFailure(n.Id, address, err)
	}
	if len(strings.TrimSpace(uri)) == 0 {
		return u.contractFailure(n.Id, address, errEmptyContractUri)
	}

	return u.Resolve(c, domain.MetadataPointer(uri)).WithContract(n.Id, address)
}

func (u *metadataUseCase) contractFailure(network string, address domain.Address, err error) *domain.Outcome {
	o := domain.FailureOutcome("", domain.ReasonContractReadError, fmt.Errorf("%w: %v", domain.ErrContractRead, err))
	u.bumpOutcome(o)
	return o.WithContract(network, address)
}

type indexedOutcome struct {
	idx     int
	outcome *domain.Outcome
}

// ResolveContracts resolves every address concurrently. Outcomes keep the order of addresses.
func (u *metadataUseCase) ResolveContracts(c bCtx.Ctx, network string, addresses []domain.Address) []*domain.Outcome {
	outcomes := make([]*domain.Outcome, len(addresses))
	if len(addresses) == 0 {
		return outcomes
	}

	b := goroutines.NewBatch(u.batchWorkers, goroutines.WithBatchSize(len(addresses)))
	defer b.Close()
	for i := range addresses {
		idx := i
		b.Queue(func() (interface{}, error) {
			return indexedOutcome{idx, u.ResolveContract(c, network, addresses[idx])}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("batch result error")
			continue
		}
		r := ret.Value().(indexedOutcome)
		outcomes[r.idx] = r.outcome
	}
	for i, o := range outcomes {
		if o == nil {
			outcomes[i] = u.contractFailure(network, addresses[i], errBatchAborted)
		}
	}
	return outcomes
}

func (u *metadataUseCase) bumpOutcome(o *domain.Outcome) {
	reason := metrics.TagValueNA
	if len(o.Reason) > 0 {
		reason = string(o.Reason)
	}
	u.metrics.BumpSum("resolve.outcome", 1, "state", string(o.State), "reason", reason)
}
