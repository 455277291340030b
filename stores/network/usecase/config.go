package usecase

import (
	"github.com/spf13/viper"
	"github.com/x-xyz/contractmeta/domain"
	"golang.org/x/xerrors"
)

const DefaultNetworkId = "polygon"

// DefaultNetworks are used when the config has no networks section
var DefaultNetworks = []domain.Network{
	{
		Id:      "polygon",
		Name:    "Polygon Mainnet",
		ChainId: 137,
		RpcUrl:  "https://polygon-rpc.com",
		Aliases: []string{"matic"},
	},
	{
		Id:      "polygon-zkevm-testnet",
		Name:    "Polygon zkEVM Testnet",
		ChainId: 2442,
		RpcUrl:  "https://rpc.cardona.zkevm-rpc.com",
		Aliases: []string{"cardona"},
	},
}

type networkCfg struct {
	Name    string   `mapstructure:"name"`
	ChainId int32    `mapstructure:"chainId"`
	RpcUrl  string   `mapstructure:"rpcUrl"`
	Aliases []string `mapstructure:"aliases"`
}

// LoadNetworks reads networks.<id> and defaultNetwork
func LoadNetworks(v *viper.Viper) ([]domain.Network, string, error) {
	defaultId := v.GetString("defaultNetwork")
	if defaultId == "" {
		defaultId = DefaultNetworkId
	}
	if !v.IsSet("networks") {
		return DefaultNetworks, defaultId, nil
	}

	cfgs := map[string]networkCfg{}
	if err := v.UnmarshalKey("networks", &cfgs); err != nil {
		return nil, "", xerrors.Errorf("failed to parse networks: %w", err)
	}
	networks := make([]domain.Network, 0, len(cfgs))
	for id, cfg := range cfgs {
		if cfg.ChainId == 0 {
			return nil, "", xerrors.Errorf("network %s has no chainId", id)
		}
		name := cfg.Name
		if name == "" {
			name = id
		}
		networks = append(networks, domain.Network{
			Id:      id,
			Name:    name,
			ChainId: domain.ChainId(cfg.ChainId),
			RpcUrl:  cfg.RpcUrl,
			Aliases: cfg.Aliases,
		})
	}
	return networks, defaultId, nil
}
