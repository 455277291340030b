package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	req := require.New(t)
	full := string(Stack(0))
	req.True(strings.HasPrefix(full, "goroutine "))

	skipped := string(Stack(1))
	req.True(strings.HasPrefix(skipped, "goroutine "))
	req.Less(len(skipped), len(full))
	req.Contains(skipped, "TestStack")
}
