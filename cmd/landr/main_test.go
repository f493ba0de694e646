package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentConfigFromEnv(t *testing.T) {
	t.Setenv("LANDR_OWNER", "alice")
	t.Setenv("LANDR_SERVER_URL", "https://review.example.com")
	t.Setenv("LANDR_WORKING_COPY", "/tmp/wc")
	t.Setenv("LANDR_COMMIT_HOOKS", "true")

	require.NoError(t, loadConfig(rootCmd))

	cfg, err := currentConfig()
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.Owner)
	assert.Equal(t, "https://review.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/wc", cfg.WorkingCopy)
	assert.True(t, cfg.CommitHooks)
}

func TestCurrentConfig_IncompleteGetsBootstrapHint(t *testing.T) {
	t.Setenv("LANDR_OWNER", "")
	t.Setenv("LANDR_SERVER_URL", "")
	t.Setenv("LANDR_WORKING_COPY", "")

	require.NoError(t, loadConfig(rootCmd))

	_, err := currentConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "landr init")
}
