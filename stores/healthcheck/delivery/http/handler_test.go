package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/contractmeta/domain/healthcheck/mocks"
	"github.com/x-xyz/contractmeta/middleware"
	"github.com/x-xyz/contractmeta/stores/healthcheck/usecase"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{
			name:     "healthy",
			wantCode: http.StatusOK,
			wantBody: `{"healthy":"ok"}`,
		},
		{
			name:     "chain down",
			pingErr:  errors.New("chain 137: dial tcp: connection refused"),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"message":"chain 137: dial tcp: connection refused"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			repo := mocks.NewHealthCheckRepo(t)
			repo.On("PingChains", mock.Anything).Return(tt.pingErr).Once()

			e := echo.New()
			e.Use(middleware.InitMiddleware().AddContext())
			New(e, usecase.New(repo))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			req.Equal(tt.wantCode, rec.Code)
			req.JSONEq(tt.wantBody, rec.Body.String())
		})
	}
}
