package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tagid/internal/store"
)

func TestRunsMissingStore(t *testing.T) {
	cfg := testConfig(t)
	out, err := execute(t, cfg, "runs", "--store", filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Contains(t, out, "run log not found")
}

func TestRunsEmptyStore(t *testing.T) {
	cfg := testConfig(t)
	st, err := store.Open(cfg.StoreDriver, cfg.StorePath)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := execute(t, cfg, "runs")
	require.NoError(t, err)
	assert.Equal(t, "no batches recorded\n", out)

	out, err = execute(t, cfg, "--format", "json", "runs")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":[]}`, out)
}

func TestRunsUnknownBatch(t *testing.T) {
	cfg := testConfig(t)
	st, err := store.Open(cfg.StoreDriver, cfg.StorePath)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = execute(t, cfg, "runs", "--batch", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.ErrorIs(t, err, store.ErrBatchNotFound)

	_, err = execute(t, cfg, "runs", "--latest")
	assert.ErrorIs(t, err, store.ErrBatchNotFound)
}

func TestRunsBatchAndLatestExclusive(t *testing.T) {
	_, err := execute(t, testConfig(t), "runs", "--batch", "a", "--latest")
	require.Error(t, err)
}
