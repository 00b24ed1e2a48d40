package integration_tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vk/packer/internal/app"
	"github.com/vk/packer/internal/hcl"
)

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		hcl         string
		expectedMsg string
	}{
		{
			name: "syntax error",
			hcl: `
				limits {
					max_things = 10
				// Missing closing brace here
			`,
			expectedMsg: "failed to parse",
		},
		{
			name:        "unknown attribute",
			hcl:         `limits { max_volume = 3 }`,
			expectedMsg: `unsupported attribute "max_volume"`,
		},
		{
			name:        "wrong type",
			hcl:         `limits { max_things = "many" }`,
			expectedMsg: `attribute "max_things"`,
		},
		{
			name:        "above ceiling",
			hcl:         `limits { max_things = 40 }`,
			expectedMsg: "max_things must be between 1 and 24, got 40",
		},
		{
			name:        "unknown solver",
			hcl:         `solver = "greedy"`,
			expectedMsg: `unknown solver "greedy"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			dir := t.TempDir()
			cfgPath := writeFile(t, dir, "packer.hcl", tc.hcl)
			input := writeFile(t, dir, "input.txt", "8 : (1,15.3,€34)\n")
			cfg := &app.Config{InputPath: input, ConfigPath: cfgPath, WorkerCount: 1}

			// --- Act ---
			_, err := app.NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, hcl.NewLoader())

			// --- Assert ---
			if err == nil {
				t.Fatal("app.NewApp() should have returned an error, but it returned nil")
			}
			if !strings.Contains(err.Error(), "failed to load configuration") {
				t.Errorf("expected a configuration error, got: %s", err)
			}
			if !strings.Contains(err.Error(), tc.expectedMsg) {
				t.Errorf("expected error to contain %q, got: %s", tc.expectedMsg, err)
			}
		})
	}
}
