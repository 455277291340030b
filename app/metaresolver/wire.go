package main

import (
	"net/http"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/viper"
	"github.com/x-xyz/contractmeta/base/contenturi"
	bCtx "github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
	hcdomain "github.com/x-xyz/contractmeta/domain/healthcheck"
	"github.com/x-xyz/contractmeta/domain/view"
	"github.com/x-xyz/contractmeta/service/chain"
	"github.com/x-xyz/contractmeta/service/chain/contract"
	hc_repo "github.com/x-xyz/contractmeta/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/contractmeta/stores/healthcheck/usecase"
	metadata_usecase "github.com/x-xyz/contractmeta/stores/metadata/usecase"
	network_usecase "github.com/x-xyz/contractmeta/stores/network/usecase"
	view_usecase "github.com/x-xyz/contractmeta/stores/view/usecase"
	webresource_repository "github.com/x-xyz/contractmeta/stores/web_resource/repository"
	webresource_usecase "github.com/x-xyz/contractmeta/stores/web_resource/usecase"
	"golang.org/x/xerrors"
)

const ipfsModeNode = "node"

type app struct {
	network     domain.NetworkUseCase
	contract    *contract.ContractMetadata
	webResource domain.WebResourceUseCase
	metadata    domain.MetadataUseCase
	view        view.UseCase
	hc          hcdomain.HealthCheckUsecase
}

func newApp(c bCtx.Ctx) (*app, error) {
	networks, defaultId, err := network_usecase.LoadNetworks(viper.GetViper())
	if err != nil {
		return nil, err
	}
	networkUC, err := network_usecase.New(networks, defaultId)
	if err != nil {
		return nil, err
	}

	rpcs := make(map[domain.ChainId]string)
	for _, n := range networks {
		if n.RpcUrl != "" {
			rpcs[n.ChainId] = n.RpcUrl
		}
	}
	chainService, err := chain.NewClient(c, &chain.ClientCfg{
		RpcUrls:            rpcs,
		MaxConcurrentCalls: viper.GetInt("chain.maxConcurrentCalls"),
	})
	if err != nil {
		c.WithField("err", err).Warn("chainService started with error")
	}
	contractMetadata := contract.NewContractMetadata(chainService)

	gateways := contenturi.Gateways{
		Ipfs:    contenturi.GatewayBase(viper.GetString("ipfs.gateway")),
		Arweave: contenturi.GatewayBase(viper.GetString("arweave.gateway")),
	}

	httpTimeout := viper.GetDuration("http.timeout")
	ipfsTimeout := viper.GetDuration("ipfs.timeout")

	var ipfsReader domain.WebResourceReaderRepository
	switch mode := viper.GetString("ipfs.mode"); mode {
	case ipfsModeNode:
		ipfsReader = webresource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(viper.GetString("ipfs.api")), ipfsTimeout)
	case "", "gateway":
		ipfsReader = webresource_repository.NewIpfsGatewayReaderRepo(http.Client{}, gateways.Ipfs, ipfsTimeout)
	default:
		return nil, xerrors.Errorf("unknown ipfs.mode %q", mode)
	}

	webResource := webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		HttpReader:      webresource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout, nil),
		IpfsReader:      ipfsReader,
		DataUriReader:   webresource_repository.NewDataUriReaderRepo(),
		ArUriReader:     webresource_repository.NewArReaderRepo(http.Client{}, gateways.Arweave, httpTimeout, nil),
		Retries:         viper.GetInt("fetch.retries"),
		BackoffStart:    viper.GetDuration("fetch.backoffStart"),
		BackoffLimit:    viper.GetDuration("fetch.backoffLimit"),
		RerouteGateways: viper.GetBool("ipfs.rerouteGateways"),

		ExponentialBackoff: viper.GetString("fetch.backoff") == "exponential",
	})

	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		WebResource:    webResource,
		ContractReader: contractMetadata,
		Network:        networkUC,
		Gateways:       gateways,
		BatchWorkers:   viper.GetInt("fetch.batchWorkers"),
	})

	return &app{
		network:     networkUC,
		contract:    contractMetadata,
		webResource: webResource,
		metadata:    metadata,
		view:        view_usecase.New(metadata),
		hc:          hc_usecase.New(hc_repo.New(chainService)),
	}, nil
}
