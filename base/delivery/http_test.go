package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/contractmeta/domain"
	"golang.org/x/xerrors"
)

func TestMakeJsonResp(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       interface{}
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			status:     http.StatusOK,
			data:       map[string]string{"state": "success"},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"state":"success"},"status":"success"}`,
		},
		{
			name:       "not found",
			status:     http.StatusInternalServerError,
			data:       xerrors.Errorf("view abc: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"data":"view abc: Your requested Item is not found","status":"fail"}`,
		},
		{
			name:       "unsupported network",
			status:     http.StatusInternalServerError,
			data:       domain.ErrUnsupportedNetwork,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"data":"unsupported network","status":"fail"}`,
		},
		{
			name:       "plain message",
			status:     http.StatusBadRequest,
			data:       "invalid address",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"data":"invalid address","status":"fail"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			req.NoError(MakeJsonResp(c, tt.status, tt.data))
			req.Equal(tt.wantStatus, rec.Code)
			req.JSONEq(tt.wantBody, rec.Body.String())
		})
	}
}
