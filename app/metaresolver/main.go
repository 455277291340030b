package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/x-xyz/contractmeta/base/env"
	"github.com/x-xyz/contractmeta/base/log"
)

const defaultConfigFile = "infra/configs/config.yaml"

//	@title			Contract Metadata Resolver
//	@version		1.0
//	@description	Resolves the contractURI metadata of NFT contracts through IPFS gateways.
//	@BasePath		/
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "metaresolver",
		Short:        "Resolve contract level metadata of NFT contracts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(viper.GetString("config"))
		},
	}

	cmd.PersistentFlags().String("config", env.ConfigFile(defaultConfigFile), "path of the yaml config")
	cmd.PersistentFlags().Bool("debug", false, "log with the development encoder")
	bindFlags(cmd.PersistentFlags(), "config", "debug")

	cmd.AddCommand(
		newServeCmd(),
		newResolveCmd(),
		newFetchCmd(),
		newContractCmd(),
		newStandardCmd(),
		newNetworksCmd(),
	)
	return cmd
}

// bindFlags makes viper read the named flags under the same key
func bindFlags(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(name, fs.Lookup(name)); err != nil {
			log.Log().WithFields(log.Fields{"flag": name, "err": err}).Panic("failed to bind flag")
		}
	}
}

// initConfig reads the yaml config. A missing file at the default path is not an error,
// every key has a default and METARESOLVER_* env vars override both.
func initConfig(file string) error {
	setDefaults()

	viper.SetEnvPrefix(env.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(file); !os.IsNotExist(statErr) || file != defaultConfigFile {
			return err
		}
	}

	if err := log.Init(viper.GetBool("debug")); err != nil {
		return err
	}
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("env_name", "local")
	viper.SetDefault("app_name", "metaresolver")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("http.timeout", "10s")
	viper.SetDefault("ipfs.mode", "gateway")
	viper.SetDefault("ipfs.gateway", "https://ipfs.io/ipfs/")
	viper.SetDefault("ipfs.api", "localhost:5001")
	viper.SetDefault("ipfs.timeout", "10s")
	viper.SetDefault("ipfs.rerouteGateways", false)
	viper.SetDefault("arweave.gateway", "https://arweave.net/")
	viper.SetDefault("fetch.retries", 1)
	viper.SetDefault("fetch.backoffStart", "200ms")
	viper.SetDefault("fetch.backoff", "linear")
	viper.SetDefault("fetch.backoffLimit", "1s")
	viper.SetDefault("fetch.batchWorkers", 8)
	viper.SetDefault("views.waitTimeout", "15s")
	viper.SetDefault("chain.maxConcurrentCalls", 16)
}
