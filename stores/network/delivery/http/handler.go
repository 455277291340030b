package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/base/delivery"
	"github.com/x-xyz/contractmeta/domain"
)

type handler struct {
	network domain.NetworkUseCase
}

func New(e *echo.Echo, network domain.NetworkUseCase) {
	h := &handler{network}

	g := e.Group("/networks")
	g.GET("", h.list)
	g.GET("/:network", h.get)
}

type listResult struct {
	Networks []domain.Network `json:"networks"`
	Default  string           `json:"default"`
}

// list
//
//	@Summary	List supported networks
//	@Tags		networks
//	@Produce	json
//	@Success	200	{object}	http.listResult
//	@Router		/networks [get]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	def, err := h.network.Default(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listResult{
		Networks: h.network.List(ctx),
		Default:  def.Id,
	})
}

// get
//
//	@Summary	Get a network by id, alias or chain id
//	@Tags		networks
//	@Produce	json
//	@Param		network	path		string	true	"network id, alias or chain id"	example(137)
//	@Success	200		{object}	domain.Network
//	@Failure	400
//	@Router		/networks/{network} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	n, err := h.network.Find(ctx, c.Param("network"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, n)
}
