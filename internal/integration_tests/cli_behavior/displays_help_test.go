package integration_tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/packer/internal/cli"
)

// Test for: help lists every option and the environment prefix
func TestCLI_DisplaysHelp(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var out bytes.Buffer

	// --- Act ---
	cfg, shouldExit, err := cli.Parse([]string{"-h"}, &out)

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)

	help := out.String()
	for _, want := range []string{
		"Usage:", "INPUT_PATH", "PACKER_WORKERS",
		"-input", "-config", "-solver", "-workers", "-log-format", "-log-level",
		"-serve-port", "-publish-url", "-publish-event", "-publish-namespace", "-publish-insecure",
	} {
		require.True(t, strings.Contains(help, want), "help text should mention %q", want)
	}
}
