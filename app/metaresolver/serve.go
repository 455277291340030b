package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/base/log"
	bValidator "github.com/x-xyz/contractmeta/base/validator"
	mmiddleware "github.com/x-xyz/contractmeta/middleware"
	hc_delivery "github.com/x-xyz/contractmeta/stores/healthcheck/delivery/http"
	metadata_delivery "github.com/x-xyz/contractmeta/stores/metadata/delivery/http"
	network_delivery "github.com/x-xyz/contractmeta/stores/network/delivery/http"
	view_delivery "github.com/x-xyz/contractmeta/stores/view/delivery/http"

	_ "github.com/x-xyz/contractmeta/app/metaresolver/docs"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the metadata api over http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func newEcho(a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	hc_delivery.New(e, a.hc)
	network_delivery.New(e, a.network)
	metadata_delivery.New(e, a.metadata, a.network)
	view_delivery.New(e, a.view, a.network, viper.GetDuration("views.waitTimeout"))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

func serve() error {
	context := ctx.Background()
	defer log.Sync()

	a, err := newApp(context)
	if err != nil {
		return err
	}
	e := newEcho(a)

	addr := viper.GetString("server.address")
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			context.WithField("err", err).Error("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	context.Info("shutting down")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
