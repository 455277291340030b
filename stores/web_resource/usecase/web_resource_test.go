package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
	"github.com/x-xyz/contractmeta/domain/mocks"
)

const cidV0 = "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq"

type webResourceSuite struct {
	suite.Suite

	ctx           bCtx.Ctx
	httpReader    *mocks.WebResourceReaderRepository
	ipfsReader    *mocks.WebResourceReaderRepository
	dataUriReader *mocks.WebResourceReaderRepository
	arUriReader   *mocks.WebResourceReaderRepository
	im            domain.WebResourceUseCase
}

func TestWebResourceSuite(t *testing.T) {
	suite.Run(t, new(webResourceSuite))
}

func (s *webResourceSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.httpReader = &mocks.WebResourceReaderRepository{}
	s.ipfsReader = &mocks.WebResourceReaderRepository{}
	s.dataUriReader = &mocks.WebResourceReaderRepository{}
	s.arUriReader = &mocks.WebResourceReaderRepository{}
	s.im = s.newUseCase(false)
}

func (s *webResourceSuite) TearDownTest() {
	s.httpReader.AssertExpectations(s.T())
	s.ipfsReader.AssertExpectations(s.T())
	s.dataUriReader.AssertExpectations(s.T())
	s.arUriReader.AssertExpectations(s.T())
}

func (s *webResourceSuite) newUseCase(reroute bool) domain.WebResourceUseCase {
	return NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader:      s.httpReader,
		IpfsReader:      s.ipfsReader,
		DataUriReader:   s.dataUriReader,
		ArUriReader:     s.arUriReader,
		Retries:         1,
		BackoffStart:    time.Millisecond,
		BackoffLimit:    5 * time.Millisecond,
		RerouteGateways: reroute,
	})
}

func (s *webResourceSuite) TestDispatch() {
	s.ipfsReader.On("Get", mock.Anything, cidV0+"/0").Return([]byte("ipfs"), nil).Twice()
	s.httpReader.On("Get", mock.Anything, "https://example.com/c.json").Return([]byte("https"), nil).Once()
	s.httpReader.On("Get", mock.Anything, "http://example.com/c.json").Return([]byte("http"), nil).Once()
	s.dataUriReader.On("Get", mock.Anything, "data:,x").Return([]byte("data"), nil).Once()
	s.arUriReader.On("Get", mock.Anything, "ar://tx/1.json").Return([]byte("ar"), nil).Once()

	tests := []struct {
		url  string
		want string
	}{
		{"ipfs://" + cidV0 + "/0", "ipfs"},
		{cidV0 + "/0", "ipfs"},
		{"https://example.com/c.json", "https"},
		{"http://example.com/c.json", "http"},
		{"data:,x", "data"},
		{"ar://tx/1.json", "ar"},
	}
	for _, tt := range tests {
		b, err := s.im.Get(s.ctx, tt.url)
		s.Require().NoError(err, tt.url)
		s.Equal(tt.want, string(b), tt.url)
	}
}

func (s *webResourceSuite) TestUnsupportedSchema() {
	_, err := s.im.Get(s.ctx, "ftp://example.com/c.json")
	s.ErrorIs(err, domain.ErrFetch)
	s.ErrorIs(err, domain.ErrUnsupportedSchema)
}

func (s *webResourceSuite) TestRetryOnceOnGatewayError() {
	url := "https://example.com/c.json"
	s.httpReader.On("Get", mock.Anything, url).Return(nil, &domain.HttpStatusError{Url: url, StatusCode: http.StatusServiceUnavailable}).Once()
	s.httpReader.On("Get", mock.Anything, url).Return([]byte("{}"), nil).Once()

	b, err := s.im.Get(s.ctx, url)
	s.NoError(err)
	s.Equal([]byte("{}"), b)
}

func (s *webResourceSuite) TestRetryWithExponentialBackoff() {
	im := NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader:         s.httpReader,
		Retries:            2,
		BackoffStart:       time.Millisecond,
		BackoffLimit:       5 * time.Millisecond,
		ExponentialBackoff: true,
	})
	url := "https://example.com/c.json"
	s.httpReader.On("Get", mock.Anything, url).Return(nil, &domain.HttpStatusError{Url: url, StatusCode: http.StatusGatewayTimeout}).Twice()
	s.httpReader.On("Get", mock.Anything, url).Return([]byte("{}"), nil).Once()

	b, err := im.Get(s.ctx, url)
	s.NoError(err)
	s.Equal([]byte("{}"), b)
}

func (s *webResourceSuite) TestRetryAtMostOnce() {
	url := "https://example.com/c.json"
	s.httpReader.On("Get", mock.Anything, url).Return(nil, &domain.HttpStatusError{Url: url, StatusCode: http.StatusBadGateway}).Twice()

	_, err := s.im.Get(s.ctx, url)
	s.ErrorIs(err, domain.ErrFetch)
	var fetchErr *domain.FetchError
	s.Require().True(errors.As(err, &fetchErr))
	s.Equal(http.StatusBadGateway, fetchErr.StatusCode())
	s.Equal(url, fetchErr.Url)
}

func (s *webResourceSuite) TestNoRetryOnNotFound() {
	url := "https://example.com/missing.json"
	s.httpReader.On("Get", mock.Anything, url).Return(nil, &domain.HttpStatusError{Url: url, StatusCode: http.StatusNotFound}).Once()

	_, err := s.im.Get(s.ctx, url)
	s.ErrorIs(err, domain.ErrFetch)
	var fetchErr *domain.FetchError
	s.Require().True(errors.As(err, &fetchErr))
	s.Equal(http.StatusNotFound, fetchErr.StatusCode())
}

func (s *webResourceSuite) TestNoRetryOnCancel() {
	url := "https://example.com/c.json"
	s.httpReader.On("Get", mock.Anything, url).Return(nil, context.Canceled).Once()

	_, err := s.im.Get(s.ctx, url)
	s.ErrorIs(err, domain.ErrFetch)
	s.ErrorIs(err, context.Canceled)
}

func (s *webResourceSuite) TestGetJson() {
	s.httpReader.On("Get", mock.Anything, "https://example.com/ok.json").Return([]byte(`{"name":"x"}`), nil).Once()
	s.httpReader.On("Get", mock.Anything, "https://example.com/bad.json").Return([]byte("not json"), nil).Once()

	b, err := s.im.GetJson(s.ctx, "https://example.com/ok.json")
	s.NoError(err)
	s.Equal(`{"name":"x"}`, string(b))

	_, err = s.im.GetJson(s.ctx, "https://example.com/bad.json")
	s.ErrorIs(err, domain.ErrDecode)
	s.NotErrorIs(err, domain.ErrFetch)
}

func (s *webResourceSuite) TestRerouteGateways() {
	im := s.newUseCase(true)
	s.ipfsReader.On("Get", mock.Anything, cidV0+"/0").Return([]byte("ipfs"), nil).Once()

	b, err := im.Get(s.ctx, "https://ipfs.io/ipfs/"+cidV0+"/0")
	s.NoError(err)
	s.Equal("ipfs", string(b))
}

func Test_gatewayIpfsPath(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "pinata",
			url:  "https://gateway.pinata.cloud/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			want: "QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
		},
		{
			name: "pinata dedicated",
			url:  "https://womenandweapons.mypinata.cloud/ipfs/QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
			want: "QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
		},
		{
			name: "ipfs.io",
			url:  "https://ipfs.io/ipfs/QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
			want: "QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
		},
		{
			name: "noop",
			url:  "https://some.url",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gatewayIpfsPath(tt.url); got != tt.want {
				t.Errorf("gatewayIpfsPath() = %v, want %v", got, tt.want)
			}
		})
	}
}
