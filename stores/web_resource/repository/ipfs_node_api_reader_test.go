package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
)

func Test_ipfsNodeApiReaderRepo_Get(t *testing.T) {
	var gotArg string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/cat" {
			http.NotFound(w, r)
			return
		}
		gotArg = r.URL.Query().Get("arg")
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(collectionJson))
	}))
	defer srv.Close()

	req := require.New(t)
	r := NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(srv.URL), time.Second)
	b, err := r.Get(bCtx.Background(), "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0")
	req.NoError(err)
	req.Equal([]byte(collectionJson), b)
	req.Equal("QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0", gotArg)
}
