package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tagid/internal/conformance"
	"github.com/roach88/tagid/internal/store"
	"github.com/roach88/tagid/internal/testutil"
)

func TestCheckWithoutDatabase(t *testing.T) {
	out, err := execute(t, testConfig(t), "check", "--driver", "none")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "backend none\n"))
	assert.True(t, strings.HasSuffix(out, "PASS\n"))
	assert.Contains(t, out, "int64    json:ok yaml:ok text:ok cue:ok sql:skip fake:ok\n")
}

func TestCheckSQLite(t *testing.T) {
	for _, driver := range testutil.SQLiteDrivers {
		t.Run(driver, func(t *testing.T) {
			dsn := filepath.Join(t.TempDir(), "check.db")
			out, err := execute(t, testConfig(t), "check", "--driver", driver, "--dsn", dsn)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "backend sqlite\n"))
			assert.Contains(t, out, "int32    json:ok yaml:ok text:ok cue:ok sql:ok fake:ok\n")
			assert.Contains(t, out, "int128   json:ok yaml:ok text:ok cue:ok sql:skip fake:ok\n")
			assert.True(t, strings.HasSuffix(out, "PASS\n"))
		})
	}
}

func TestCheckJSON(t *testing.T) {
	out, err := execute(t, testConfig(t), "--format", "json", "check", "--driver", "none")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Data.Report)
	assert.True(t, resp.Data.Report.Pass)
	assert.Len(t, resp.Data.Report.Results, len(conformance.Cases)*len(conformance.Bridges))
	assert.Nil(t, resp.Data.Batch)
}

func TestCheckUnknownDriver(t *testing.T) {
	out, err := execute(t, testConfig(t), "check", "--driver", "nosuch")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeDatabase)
	assert.Contains(t, out, "failed to open database")
}

// newTestCommand returns a bare command wired to buffers, for calling run
// functions directly.
func newTestCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetContext(context.Background())
	return cmd
}

func TestCheckRecordAndList(t *testing.T) {
	cfg := testConfig(t)
	buf := &bytes.Buffer{}
	opts := &CheckOptions{
		RootOptions:    &RootOptions{Format: "text", Config: cfg},
		Driver:         "sqlite",
		DSN:            filepath.Join(t.TempDir(), "check.db"),
		Seed:           1,
		Record:         true,
		StoreDriver:    cfg.StoreDriver,
		StorePath:      cfg.StorePath,
		BatchGenerator: store.NewFixedGenerator("batch-1", "batch-2"),
	}

	require.NoError(t, runCheck(opts, newTestCommand(buf)))
	assert.True(t, strings.HasSuffix(buf.String(), "batch batch-1 (seq 1)\n"))

	opts.Driver = "none"
	buf.Reset()
	require.NoError(t, runCheck(opts, newTestCommand(buf)))
	assert.Contains(t, buf.String(), "batch batch-2 (seq 2)")

	out, err := execute(t, cfg, "runs")
	require.NoError(t, err)
	assert.Equal(t, "   1  batch-1  sqlite   PASS\n   2  batch-2  none     PASS\n", out)

	out, err = execute(t, cfg, "runs", "--batch", "batch-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "backend sqlite\n"))
	assert.Contains(t, out, "int32    json:ok yaml:ok text:ok cue:ok sql:ok fake:ok\n")
	assert.True(t, strings.HasSuffix(out, "PASS\nbatch batch-1 (seq 1)\n"))

	out, err = execute(t, cfg, "runs", "--latest")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "backend none\n"))
	assert.Contains(t, out, "sql:skip")

	out, err = execute(t, cfg, "--format", "json", "runs", "--batch", "batch-2")
	require.NoError(t, err)
	var resp struct {
		Data BatchOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "batch-2", resp.Data.Batch.ID.Inner())
	assert.Equal(t, int64(2), resp.Data.Batch.Seq)
	assert.Len(t, resp.Data.Runs, len(conformance.Cases)*len(conformance.Bridges))
	for _, r := range resp.Data.Runs {
		assert.Equal(t, "batch-2", r.Batch.Inner())
	}
}

func TestRecordUsesUUIDv7ByDefault(t *testing.T) {
	cfg := testConfig(t)
	_, err := execute(t, cfg, "check", "--driver", "none", "--record")
	require.NoError(t, err)

	out, err := execute(t, cfg, "--format", "json", "runs")
	require.NoError(t, err)
	var resp struct {
		Data []store.Batch `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 1)
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-`, resp.Data[0].ID.Inner())
}
