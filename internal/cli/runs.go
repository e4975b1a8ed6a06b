package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tagid"
	"github.com/roach88/tagid/internal/conformance"
	"github.com/roach88/tagid/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	StoreDriver string
	StorePath   string
	Batch       string
	Latest      bool
}

// BatchOutput is the JSON payload of "runs --batch".
type BatchOutput struct {
	Batch store.Batch `json:"batch"`
	Runs  []store.Run `json:"runs"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := rootOpts.Config
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded conformance runs",
		Long: `List the batches in the run log, or the results of one batch.

Example:
  tagid runs
  tagid runs --latest
  tagid runs --batch 0192f0c1-6b7e-7a51-9d0e-4c5a9b1f2e3d`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.StorePath, "store", cfg.StorePath, "path to the SQLite run log")
	cmd.Flags().StringVar(&opts.StoreDriver, "store-driver", cfg.StoreDriver, "SQLite driver for the run log (sqlite3|sqlite)")
	cmd.Flags().StringVar(&opts.Batch, "batch", cfg.Batch.Inner(), "show the runs of this batch")
	cmd.Flags().BoolVar(&opts.Latest, "latest", false, "show the runs of the most recent batch")
	cmd.MarkFlagsMutuallyExclusive("batch", "latest")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := cmd.Context()

	if _, err := os.Stat(opts.StorePath); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, "run log not found", err)
	}
	st, err := store.Open(opts.StoreDriver, opts.StorePath)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to open run log", err)
	}
	defer st.Close()

	var batch store.Batch
	switch {
	case opts.Latest:
		batch, err = st.LatestBatch(ctx)
	case opts.Batch != "":
		var id tagid.ID[store.Batch, string]
		if err := id.UnmarshalText([]byte(opts.Batch)); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeUsage, "invalid batch id", err)
		}
		batch, err = st.GetBatch(ctx, id)
	default:
		return listBatches(formatter, st, cmd)
	}
	if errors.Is(err, store.ErrBatchNotFound) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, "batch not found", err)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to read batch", err)
	}

	runs, err := st.ListRuns(ctx, batch.ID)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to read runs", err)
	}
	if opts.Format == "json" {
		return formatter.Success(BatchOutput{Batch: batch, Runs: runs})
	}
	return formatter.Success(renderBatch(batch, runs))
}

func listBatches(formatter *OutputFormatter, st *store.Store, cmd *cobra.Command) error {
	batches, err := st.ListBatches(cmd.Context())
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to list batches", err)
	}
	if formatter.Format == "json" {
		return formatter.Success(batches)
	}
	if len(batches) == 0 {
		return formatter.Success("no batches recorded")
	}

	lines := make([]string, 0, len(batches))
	for _, b := range batches {
		lines = append(lines, fmt.Sprintf("%4d  %s  %-8s %s", b.Seq, b.ID, b.Backend, passLabel(b.Pass)))
	}
	return formatter.Success(strings.Join(lines, "\n"))
}

// renderBatch rebuilds the conformance summary from stored runs.
func renderBatch(batch store.Batch, runs []store.Run) string {
	backend := batch.Backend
	if backend == "none" {
		backend = ""
	}
	report := conformance.NewReport(backend)
	for _, r := range runs {
		report.Add(conformance.Result{
			Repr:    r.Repr,
			Bridge:  conformance.Bridge(r.Bridge),
			OK:      r.OK,
			Skipped: r.Skipped,
			Detail:  r.Detail,
		})
	}
	return renderCheck(CheckOutput{Report: report, Batch: &batch})
}

func passLabel(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
