package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/base/delivery"
	"github.com/x-xyz/contractmeta/domain"
	"github.com/x-xyz/contractmeta/domain/view"
)

type handler struct {
	view        view.UseCase
	network     domain.NetworkUseCase
	waitTimeout time.Duration
}

// New registers the view routes. A wait on a view gives up after waitTimeout.
func New(e *echo.Echo, view view.UseCase, network domain.NetworkUseCase, waitTimeout time.Duration) {
	h := &handler{
		view:        view,
		network:     network,
		waitTimeout: waitTimeout,
	}

	g := e.Group("/views")
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.submit)
	g.DELETE("/:id", h.delete)
}

// create
//
//	@Summary	Create a view
//	@Tags		views
//	@Produce	json
//	@Success	201	{object}	view.View
//	@Router		/views [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	v, err := h.view.Create(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, v)
}

// get
//
//	@Summary		Get a view
//	@Description	With wait=true the call blocks until the latest submission is resolved or the wait timeout passes
//	@Tags			views
//	@Produce		json
//	@Param			id		path		string	true	"view id"
//	@Param			wait	query		bool	false	"wait for a terminal state"
//	@Success		200		{object}	view.View
//	@Failure		404
//	@Router			/views/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Id   string `param:"id"`
		Wait bool   `query:"wait"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	var (
		v   *view.View
		err error
	)
	if p.Wait {
		waitCtx, cancel := bCtx.WithTimeout(ctx, h.waitTimeout)
		defer cancel()
		v, err = h.view.Wait(waitCtx, p.Id)
	} else {
		v, err = h.view.Get(ctx, p.Id)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, v)
}

type submitPayload struct {
	Network string         `json:"network"`
	Address domain.Address `json:"address"`
}

// submit
//
//	@Summary		Show a contract in a view
//	@Description	Supersedes whatever the view was resolving. A blank or zero address yields the noAddress state.
//	@Tags			views
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"view id"
//	@Param			body	body		http.submitPayload	true	"contract"
//	@Success		200		{object}	view.View
//	@Failure		400
//	@Failure		404
//	@Router			/views/{id} [put]
func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := submitPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	n, err := h.network.Find(ctx, p.Network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	v, err := h.view.Submit(ctx, c.Param("id"), n.Id, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, v)
}

// delete
//
//	@Summary	Delete a view
//	@Tags		views
//	@Param		id	path	string	true	"view id"
//	@Success	200
//	@Failure	404
//	@Router		/views/{id} [delete]
func (h *handler) delete(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if err := h.view.Delete(ctx, c.Param("id")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
