package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
)

func Test_dataUriReaderRepo_Get(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    []byte
		wantErr bool
	}{
		{
			name:    "invalid schema",
			uri:     "https://url",
			wantErr: true,
		},
		{
			name:    "empty data part",
			uri:     "data:application/json;base64,",
			wantErr: true,
		},
		{
			name:    "no data part",
			uri:     "data:application/json;base64",
			wantErr: true,
		},
		{
			name: "utf8 json",
			uri:  `data:application/json;utf8,{"name":"Loot","image":"ipfs://QmcsrQJMKA9qC9GcEMgdjb9LPN99iDNAg8aQQJLJGpkHxk/1.svg"}`,
			want: []byte(`{"name":"Loot","image":"ipfs://QmcsrQJMKA9qC9GcEMgdjb9LPN99iDNAg8aQQJLJGpkHxk/1.svg"}`),
		},
		{
			name: "percent-encoded json",
			uri:  `data:application/json,%7B%22name%22%3A%22Loot%22%7D`,
			want: []byte(`{"name":"Loot"}`),
		},
		{
			name: "base64 json",
			uri:  "data:application/json;base64,eyJuYW1lIjoiTG9vdCJ9",
			want: []byte(`{"name":"Loot"}`),
		},
		{
			name: "base64 without padding",
			uri:  "data:application/json;base64,eyJuYW1lIjoiTG9vdDEifQ",
			want: []byte(`{"name":"Loot1"}`),
		},
		{
			name:    "broken base64",
			uri:     "data:application/json;base64,!!!",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			r := NewDataUriReaderRepo()
			got, err := r.Get(bCtx.Background(), tt.uri)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}
