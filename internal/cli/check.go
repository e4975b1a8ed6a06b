package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/roach88/tagid/internal/conformance"
	"github.com/roach88/tagid/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Driver      string
	DSN         string
	Seed        uint64
	Timeout     time.Duration
	Record      bool
	StoreDriver string
	StorePath   string

	// BatchGenerator allows overriding batch id generation (for testing).
	// If nil, defaults to UUIDv7Generator.
	BatchGenerator store.BatchIDGenerator
}

// CheckOutput is the JSON payload of the check command.
type CheckOutput struct {
	Report *conformance.Report `json:"report"`
	Batch  *store.Batch        `json:"batch,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := rootOpts.Config
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the bridge conformance suite",
		Long: `Run every bridge check for every representation.

SQL checks run against --driver/--dsn inside a transaction that is rolled
back. Use --driver none to skip them. With --record the results are
appended to the SQLite run log at --store.

Exits 1 when any check fails.

Example:
  tagid check
  tagid check --driver pgx --dsn postgres://localhost/tagid --record`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Driver, "driver", cfg.Driver, "database/sql driver (sqlite3|sqlite|pgx|mysql|none)")
	cmd.Flags().StringVar(&opts.DSN, "dsn", cfg.DSN, "data source name for --driver")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", cfg.Seed, "seed for the fake bridge check")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", cfg.Timeout, "overall deadline (0 for none)")
	cmd.Flags().BoolVar(&opts.Record, "record", false, "append the results to the run log")
	cmd.Flags().StringVar(&opts.StorePath, "store", cfg.StorePath, "path to the SQLite run log")
	cmd.Flags().StringVar(&opts.StoreDriver, "store-driver", cfg.StoreDriver, "SQLite driver for the run log (sqlite3|sqlite)")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, formatter.GetErrWriter())

	ctx := cmd.Context()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	runner := &conformance.Runner{Seed: opts.Seed, Logger: logger}
	if opts.Driver != "" && opts.Driver != "none" {
		db, err := sqlx.Open(opts.Driver, opts.DSN)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to connect to database", err)
		}
		logger.Debug("connected", "driver", opts.Driver)
		runner.DB = db
	}

	report, err := runner.Run(ctx)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "conformance run aborted", err)
	}

	out := CheckOutput{Report: report}
	if opts.Record {
		batch, err := recordReport(ctx, opts, report)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to record results", err)
		}
		logger.Info("recorded batch", "id", batch.ID, "seq", batch.Seq)
		out.Batch = &batch
	}

	var outErr error
	if opts.Format == "json" {
		outErr = formatter.Success(out)
	} else {
		outErr = formatter.Success(renderCheck(out))
	}
	if outErr != nil {
		return outErr
	}

	if failures := report.Failures(); len(failures) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d conformance check(s) failed", len(failures)))
	}
	return nil
}

// renderCheck is the text form of a check: the summary, then one line per
// failure with its detail.
func renderCheck(out CheckOutput) string {
	var b strings.Builder
	b.WriteString(out.Report.Summary())
	for _, f := range out.Report.Failures() {
		fmt.Fprintf(&b, "  %s/%s: %s\n", f.Repr, f.Bridge, f.Detail)
	}
	if out.Batch != nil {
		fmt.Fprintf(&b, "batch %s (seq %d)\n", out.Batch.ID, out.Batch.Seq)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func recordReport(ctx context.Context, opts *CheckOptions, report *conformance.Report) (store.Batch, error) {
	gen := opts.BatchGenerator
	if gen == nil {
		gen = store.UUIDv7Generator{}
	}

	st, err := store.Open(opts.StoreDriver, opts.StorePath)
	if err != nil {
		return store.Batch{}, err
	}
	defer st.Close()

	backend := report.Backend
	if backend == "" {
		backend = "none"
	}
	runs := make([]store.Run, 0, len(report.Results))
	for _, r := range report.Results {
		runs = append(runs, store.Run{
			Backend: backend,
			Repr:    r.Repr,
			Bridge:  string(r.Bridge),
			OK:      r.OK,
			Skipped: r.Skipped,
			Detail:  r.Detail,
		})
	}

	batch, _, err := st.WriteBatch(ctx, store.Batch{
		ID:      gen.Generate(),
		Backend: backend,
		Pass:    report.Pass,
	}, runs)
	return batch, err
}
