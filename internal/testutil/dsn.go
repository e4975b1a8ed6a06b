package testutil

import (
	"testing"

	"github.com/caarlos0/env/v11"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// IntegrationDSNs point tests at real database servers.
type IntegrationDSNs struct {
	Postgres string `env:"TAGID_TEST_POSTGRES_DSN"`
	MySQL    string `env:"TAGID_TEST_MYSQL_DSN"`
}

// LoadDSNs reads IntegrationDSNs from the environment.
func LoadDSNs(t testing.TB) IntegrationDSNs {
	t.Helper()
	dsns, err := env.ParseAs[IntegrationDSNs]()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	return dsns
}

// OpenServer connects to dsn with driverName, skipping the test when dsn is
// empty.
func OpenServer(t testing.TB, driverName, dsn string) *sqlx.DB {
	t.Helper()
	if dsn == "" {
		t.Skipf("no %s DSN configured", driverName)
	}
	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		t.Fatalf("connect %s: %v", driverName, err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
