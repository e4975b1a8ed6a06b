package conformance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/jmoiron/sqlx"

	"github.com/roach88/tagid"
	"github.com/roach88/tagid/dialect"
)

// DefaultSeed seeds the fake check when Runner.Seed is zero. gofakeit treats
// a zero seed as "random", which would make the check meaningless.
const DefaultSeed uint64 = 1

const fakeDraws = 16

// Runner runs every check for every case.
type Runner struct {
	// DB is the connection the SQL checks run on. Nil skips them.
	DB *sqlx.DB
	// Dialect overrides the dialect derived from DB's driver name.
	Dialect *dialect.Dialect
	Seed    uint64
	Logger  *slog.Logger
}

// Case is one representation with the sample value its checks use.
type Case struct {
	Repr string
	run  func(ctx context.Context, e *env) []Result
}

type env struct {
	tx      *sqlx.Tx
	dialect *dialect.Dialect
	cue     *cue.Context
	seed    uint64
}

// Cases is the fixed case table, one entry per representation. Samples sit
// at or near the edge of each range.
var Cases = []Case{
	caseFor(int8(math.MinInt8)),
	caseFor(int16(math.MaxInt16)),
	caseFor(int32(math.MinInt32)),
	caseFor(int64(math.MaxInt64)),
	caseFor(tagid.Int128FromWords(math.MinInt64, 0)),
	caseFor(uint8(math.MaxUint8)),
	caseFor(uint16(math.MaxUint16)),
	caseFor(uint32(math.MaxUint32)),
	caseFor(uint64(math.MaxInt64)),
	caseFor(tagid.Uint128FromWords(math.MaxUint64, math.MaxUint64)),
	caseFor(float32(0.1)),
	caseFor(0.1),
	caseFor("tagid/sample"),
}

// BackendCases holds extra cases run only against the named backend, for
// samples other backends cannot store.
var BackendCases = map[string][]Case{
	"mysql": {caseFor(uint64(math.MaxUint64))},
}

// CasesFor returns Cases followed by the extra cases of backend.
func CasesFor(backend string) []Case {
	return append(slices.Clip(Cases), BackendCases[backend]...)
}

func caseFor[R tagid.Repr](sample R) Case {
	repr := dialect.KindOf[R]().String()
	return Case{
		Repr: repr,
		run: func(ctx context.Context, e *env) []Result {
			return []Result{
				result(repr, BridgeJSON, CheckJSON(sample)),
				result(repr, BridgeYAML, CheckYAML(sample)),
				result(repr, BridgeText, CheckText(sample)),
				result(repr, BridgeCUE, CheckCUE(e.cue, sample)),
				result(repr, BridgeSQL, e.checkSQL(ctx, func() error {
					return CheckSQL(ctx, e.tx, e.dialect, sample)
				})),
				result(repr, BridgeFake, CheckFake[R](e.seed, fakeDraws)),
			}
		},
	}
}

// checkSQL runs check inside a savepoint so a failed statement does not
// abort the enclosing transaction for the checks that follow.
func (e *env) checkSQL(ctx context.Context, check func() error) error {
	if e.tx == nil {
		return fmt.Errorf("%w: no database", ErrSkipped)
	}
	if _, err := e.tx.ExecContext(ctx, "SAVEPOINT tagid_check"); err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	err := check()
	if err != nil && !errors.Is(err, ErrSkipped) {
		if _, rbErr := e.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT tagid_check"); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback to savepoint: %w", rbErr))
		}
	}
	if _, relErr := e.tx.ExecContext(ctx, "RELEASE SAVEPOINT tagid_check"); relErr != nil && err == nil {
		return fmt.Errorf("release savepoint: %w", relErr)
	}
	return err
}

func result(repr string, bridge Bridge, err error) Result {
	r := Result{Repr: repr, Bridge: bridge, OK: err == nil}
	if err != nil {
		r.Detail = err.Error()
		r.Skipped = errors.Is(err, ErrSkipped)
	}
	return r
}

// Run executes all cases. The returned error reports infrastructure
// problems (no dialect, failed transaction); check failures are recorded in
// the report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := &env{cue: cuecontext.New(), seed: r.Seed, dialect: r.Dialect}
	if e.seed == 0 {
		e.seed = DefaultSeed
	}

	if r.DB != nil {
		if e.dialect == nil {
			d, err := dialect.ForDriver(r.DB.DriverName())
			if err != nil {
				return nil, err
			}
			e.dialect = d
		}
		tx, err := r.DB.BeginTxx(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to begin check transaction: %w", err)
		}
		defer tx.Rollback()
		e.tx = tx
	}

	backend := ""
	if e.dialect != nil {
		backend = e.dialect.Name()
	}
	report := NewReport(backend)

	for _, c := range CasesFor(backend) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, res := range c.run(ctx, e) {
			report.Add(res)
			logger.Debug("check finished",
				"repr", res.Repr,
				"bridge", res.Bridge,
				"status", res.Status(),
				"detail", res.Detail,
			)
		}
	}

	logger.Info("conformance run finished",
		"backend", backend,
		"results", len(report.Results),
		"failures", len(report.Failures()),
	)
	return report, nil
}
