package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStats(t *testing.T) {
	workspace(t, map[string]string{
		".tryexpand.yaml": "cache: cache.db\n",
		"port.try.go":     goodSource,
	})

	out, err := execute(t, "cache", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Entries:    0")
	assert.NotContains(t, out, "Last run")

	_, err = execute(t, "expand")
	require.NoError(t, err)

	out, err = execute(t, "cache", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Entries:    1")
	assert.Contains(t, out, "Directives: 1")
	assert.Contains(t, out, "1 file(s), 1 expanded, 0 failed")

	out, err = execute(t, "cache", "stats", "--format", "json")
	require.NoError(t, err)
	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Entries int `json:"entries"`
			Runs    int `json:"runs"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Data.Entries)
	assert.Equal(t, 1, resp.Data.Runs)
}

func TestCacheClear(t *testing.T) {
	workspace(t, map[string]string{"port.try.go": goodSource})

	_, err := execute(t, "expand", "--cache", "c.db")
	require.NoError(t, err)

	out, err := execute(t, "cache", "clear", "--cache", "c.db")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Removed 1 cache entry")

	out, err = execute(t, "cache", "stats", "--cache", "c.db")
	require.NoError(t, err)
	assert.Contains(t, out, "Entries:    0")
}

func TestCache_NotConfigured(t *testing.T) {
	workspace(t, nil)

	out, err := execute(t, "cache", "stats")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "no cache configured")
}
