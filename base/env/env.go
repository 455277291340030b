package env

import (
	"os"
)

// EnvPrefix is the prefix of every environment override read through viper
const EnvPrefix = "METARESOLVER"

// PodName example: metaresolver-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// ConfigFile is the config path from METARESOLVER_CONFIG, falling back to def
func ConfigFile(def string) string {
	if f := os.Getenv(EnvPrefix + "_CONFIG"); f != "" {
		return f
	}
	return def
}
