package env

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigFile(t *testing.T) {
	req := require.New(t)
	t.Setenv("METARESOLVER_CONFIG", "")
	req.Equal("infra/configs/config.yaml", ConfigFile("infra/configs/config.yaml"))

	t.Setenv("METARESOLVER_CONFIG", "/etc/metaresolver.yaml")
	req.Equal("/etc/metaresolver.yaml", ConfigFile("infra/configs/config.yaml"))
}
