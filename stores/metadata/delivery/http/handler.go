package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/base/delivery"
	"github.com/x-xyz/contractmeta/domain"
	"github.com/x-xyz/contractmeta/middleware"
)

type handler struct {
	metadata domain.MetadataUseCase
	network  domain.NetworkUseCase
}

func New(e *echo.Echo, metadata domain.MetadataUseCase, network domain.NetworkUseCase) {
	h := &handler{
		metadata: metadata,
		network:  network,
	}

	e.GET("/metadata", h.resolve)

	g := e.Group("/contracts")
	g.GET("/:network/:address/metadata", h.resolveContract, middleware.IsValidAddress("address"))
	g.POST("/:network/metadata", h.resolveContracts)
}

// resolve
//
//	@Summary		Resolve a metadata pointer
//	@Description	Fetch and decode the metadata document a contractURI value points to. Resolution failures are reported in the outcome, not as http errors.
//	@Tags			metadata
//	@Produce		json
//	@Param			uri	query		string	false	"ipfs://, bare cid, http(s), ar:// or data: pointer"	example(ipfs://QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0)
//	@Success		200	{object}	domain.Outcome
//	@Router			/metadata [get]
func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Uri string `query:"uri"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.metadata.Resolve(ctx, domain.MetadataPointer(p.Uri)))
}

// resolveContract
//
//	@Summary		Resolve contract metadata
//	@Description	Read contractURI() of a contract and resolve the document it points to. The zero address yields the noAddress state.
//	@Tags			metadata
//	@Produce		json
//	@Param			network	path		string	true	"network id, alias or chain id"	example(polygon)
//	@Param			address	path		string	true	"contract address"				example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Success		200		{object}	domain.Outcome
//	@Failure		400
//	@Router			/contracts/{network}/{address}/metadata [get]
func (h *handler) resolveContract(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Network string         `param:"network"`
		Address domain.Address `param:"address"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	n, err := h.network.Find(ctx, p.Network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.metadata.ResolveContract(ctx, n.Id, p.Address))
}

type batchPayload struct {
	Addresses []domain.Address `json:"addresses" validate:"required,min=1,max=100,dive,ethaddr"`
}

// resolveContracts
//
//	@Summary		Resolve metadata of many contracts
//	@Description	Outcomes are returned in the order of the requested addresses
//	@Tags			metadata
//	@Accept			json
//	@Produce		json
//	@Param			network	path		string				true	"network id, alias or chain id"	example(polygon)
//	@Param			body	body		http.batchPayload	true	"addresses"
//	@Success		200		{array}		domain.Outcome
//	@Failure		400
//	@Router			/contracts/{network}/metadata [post]
func (h *handler) resolveContracts(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := batchPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	n, err := h.network.Find(ctx, c.Param("network"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.metadata.ResolveContracts(ctx, n.Id, p.Addresses))
}
