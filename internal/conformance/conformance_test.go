package conformance

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tagid"
	"github.com/roach88/tagid/dialect"
	"github.com/roach88/tagid/internal/testutil"
)

func TestRunWithoutDatabase(t *testing.T) {
	report, err := (&Runner{}).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Pass)
	assert.Empty(t, report.Backend)
	assert.Len(t, report.Results, len(Cases)*len(Bridges))
	AssertGolden(t, "nodb", report)
}

func TestRunSQLite(t *testing.T) {
	for _, name := range testutil.SQLiteDrivers {
		t.Run(name, func(t *testing.T) {
			db := testutil.OpenSQLite(t, name)
			report, err := (&Runner{DB: db, Seed: 7}).Run(context.Background())
			require.NoError(t, err)

			assert.Empty(t, report.Failures())
			AssertGolden(t, "sqlite", report)
		})
	}
}

func TestRunRollsBack(t *testing.T) {
	db := testutil.OpenSQLite(t, "sqlite3")
	_, err := (&Runner{DB: db}).Run(context.Background())
	require.NoError(t, err)

	var n int
	require.NoError(t, db.Get(&n, "SELECT count(*) FROM sqlite_temp_master WHERE name LIKE 'tagid_check_%'"))
	assert.Zero(t, n)
}

func TestRunPostgres(t *testing.T) {
	db := testutil.OpenServer(t, "pgx", testutil.LoadDSNs(t).Postgres)

	report, err := (&Runner{DB: db}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "postgres", report.Backend)
	assert.Empty(t, report.Failures())
}

func TestRunMySQL(t *testing.T) {
	db := testutil.OpenServer(t, "mysql", testutil.LoadDSNs(t).MySQL)

	report, err := (&Runner{DB: db}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mysql", report.Backend)
	assert.Len(t, report.Results, len(CasesFor("mysql"))*len(Bridges))
	assert.Empty(t, report.Failures())
}

func TestCasesFor(t *testing.T) {
	assert.Equal(t, len(Cases), len(CasesFor("")))
	assert.Equal(t, len(Cases), len(CasesFor("sqlite")))
	assert.Equal(t, len(Cases), len(CasesFor("postgres")))

	mysql := CasesFor("mysql")
	require.Len(t, mysql, len(Cases)+1)
	assert.Equal(t, "uint64", mysql[len(Cases)].Repr)
}

func TestMySQLUint64CaseIsCompatible(t *testing.T) {
	col, err := dialect.ColumnType[uint64](dialect.MySQL)
	require.NoError(t, err)
	assert.True(t, dialect.Compatible[uint64](dialect.MySQL, col))
}

func TestRunUnknownDriver(t *testing.T) {
	db := sqlx.NewDb(testutil.OpenSQLite(t, "sqlite3").DB, "oracle")
	_, err := (&Runner{DB: db}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&Runner{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := (&Runner{Logger: logger}).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "conformance run finished")
	assert.Contains(t, buf.String(), "repr=uint128")
}

func TestCheckSQLSkipsUnsupported(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenSQLite(t, "sqlite")
	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	err = CheckSQL(ctx, tx, dialect.Postgres, uint64(1))
	assert.ErrorIs(t, err, ErrSkipped)
	assert.ErrorIs(t, err, dialect.ErrUnsupported)

	err = CheckSQL(ctx, tx, dialect.SQLite, tagid.Int128From64(1))
	assert.ErrorIs(t, err, ErrSkipped)
}

func TestCheckSQLWithForeignDialect(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenSQLite(t, "sqlite3")
	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	// SQLite accepts any declared type name, so MySQL's column types can be
	// exercised without a MySQL server.
	require.NoError(t, CheckSQL(ctx, tx, dialect.MySQL, uint8(200)))
	require.NoError(t, CheckSQL(ctx, tx, dialect.MySQL, "mysql"))
}

func TestChecksWithoutDatabase(t *testing.T) {
	assert.NoError(t, CheckJSON(int16(-3)))
	assert.NoError(t, CheckYAML("3"))
	assert.NoError(t, CheckText(float32(0.1)))
	assert.NoError(t, CheckFake[string](3, 4))
}

func TestReport(t *testing.T) {
	rep := NewReport("sqlite")
	rep.Add(Result{Repr: "int8", Bridge: BridgeJSON, OK: true})
	rep.Add(Result{Repr: "int8", Bridge: BridgeSQL, Skipped: true})
	assert.True(t, rep.Pass)

	rep.Add(Result{Repr: "int16", Bridge: BridgeJSON, Detail: "boom"})
	assert.False(t, rep.Pass)
	require.Len(t, rep.Failures(), 1)
	assert.Equal(t, "boom", rep.Failures()[0].Detail)

	assert.Equal(t, "backend sqlite\nint8     json:ok sql:skip\nint16    json:FAIL\nFAIL\n", rep.Summary())
}
