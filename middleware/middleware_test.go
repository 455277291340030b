package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/contractmeta/base/ctx"
)

func newEcho() *echo.Echo {
	m := InitMiddleware()
	e := echo.New()
	e.Use(echoMiddleware.RequestID())
	e.Use(m.AddContext())
	e.Use(m.ResponseLogger())
	e.Use(echoMiddleware.CORS())
	return e
}

func TestAddContext(t *testing.T) {
	req := require.New(t)
	e := newEcho()
	var got ctx.Ctx
	e.GET("/ping", func(c echo.Context) error {
		got = c.Get("ctx").(ctx.Ctx)
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	req.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
	req.Equal(rec.Header().Get(echo.HeaderXRequestID), got.Value("requestID"))
}

func TestIsValidAddress(t *testing.T) {
	e := newEcho()
	e.GET("/contracts/:address", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("address"))
	}, IsValidAddress("address"))

	tests := []struct {
		address string
		want    int
	}{
		{"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", http.StatusOK},
		{"0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D", http.StatusOK},
		{"0x1234", http.StatusBadRequest},
		{"bc4ca0eda7647a8ab7c2061c2e118a18a936f13d", http.StatusBadRequest},
		{"hello", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contracts/"+tt.address, nil))
			require.Equal(t, tt.want, rec.Code)
		})
	}
}
