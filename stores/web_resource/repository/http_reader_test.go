package repository

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
)

const collectionJson = `{"name":"Lazy Lions","description":"10,000 lions","image":"ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ"}`

func Test_httpReaderRepo_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/collection.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(collectionJson))
		case "/headers":
			w.Write([]byte(r.Header.Get("X-Api-Key")))
		case "/slow":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte("late"))
		case "/huge.json":
			w.Write([]byte(`{"pad":"`))
			w.Write(bytes.Repeat([]byte("a"), maxBodySize))
			w.Write([]byte(`"}`))
		case "/limit.json":
			w.Write([]byte(`"`))
			w.Write(bytes.Repeat([]byte("a"), maxBodySize-2))
			w.Write([]byte(`"`))
		case "/created":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("{}"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("ok", func(t *testing.T) {
		req := require.New(t)
		r := NewHttpReaderRepo(http.Client{}, time.Second, nil)
		b, err := r.Get(bCtx.Background(), srv.URL+"/collection.json")
		req.NoError(err)
		req.Equal([]byte(collectionJson), b)
	})

	t.Run("any 2xx is accepted", func(t *testing.T) {
		req := require.New(t)
		r := NewHttpReaderRepo(http.Client{}, time.Second, nil)
		b, err := r.Get(bCtx.Background(), srv.URL+"/created")
		req.NoError(err)
		req.Equal([]byte("{}"), b)
	})

	t.Run("headers", func(t *testing.T) {
		req := require.New(t)
		r := NewHttpReaderRepo(http.Client{}, time.Second, map[string]string{"X-Api-Key": "secret"})
		b, err := r.Get(bCtx.Background(), srv.URL+"/headers")
		req.NoError(err)
		req.Equal([]byte("secret"), b)
	})

	t.Run("not found", func(t *testing.T) {
		req := require.New(t)
		r := NewHttpReaderRepo(http.Client{}, time.Second, nil)
		_, err := r.Get(bCtx.Background(), srv.URL+"/missing.json")
		var statusErr *domain.HttpStatusError
		req.True(errors.As(err, &statusErr))
		req.Equal(http.StatusNotFound, statusErr.StatusCode)
		req.Equal(srv.URL+"/missing.json", statusErr.Url)
	})

	t.Run("body too large", func(t *testing.T) {
		req := require.New(t)
		r := NewHttpReaderRepo(http.Client{}, 5*time.Second, nil)
		_, err := r.Get(bCtx.Background(), srv.URL+"/huge.json")
		req.ErrorIs(err, ErrBodyTooLarge)

		b, err := r.Get(bCtx.Background(), srv.URL+"/limit.json")
		req.NoError(err)
		req.Len(b, maxBodySize)
	})

	t.Run("timeout", func(t *testing.T) {
		req := require.New(t)
		r := NewHttpReaderRepo(http.Client{}, 20*time.Millisecond, nil)
		_, err := r.Get(bCtx.Background(), srv.URL+"/slow")
		req.Error(err)
		req.ErrorIs(err, context.DeadlineExceeded)
	})
}
