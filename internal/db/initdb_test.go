package db

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestExtractDBName(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/cwdp?sslmode=disable": "cwdp",
		"host=localhost dbname=site user=postgres":           "site",
	}
	for conn, want := range cases {
		got, err := extractDBName(conn)
		if err != nil {
			t.Fatalf("extractDBName(%q): %v", conn, err)
		}
		if got != want {
			t.Fatalf("extractDBName(%q) = %q, want %q", conn, got, want)
		}
	}

	if _, err := extractDBName("host=localhost user=postgres"); err == nil {
		t.Fatalf("expected error without dbname")
	}
}

func TestReplaceDBName(t *testing.T) {
	got, err := replaceDBName("postgres://u:p@localhost:5432/cwdp?sslmode=disable", "postgres")
	if err != nil {
		t.Fatalf("replaceDBName: %v", err)
	}
	if got != "postgres://u:p@localhost:5432/postgres?sslmode=disable" {
		t.Fatalf("unexpected url %q", got)
	}

	got, err = replaceDBName("host=localhost dbname=site", "postgres")
	if err != nil {
		t.Fatalf("replaceDBName: %v", err)
	}
	if got != "host=localhost dbname=postgres" {
		t.Fatalf("unexpected dsn %q", got)
	}
}

func TestEnsureDatabaseCreatesWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM pg_database WHERE datname = \$1`).
		WithArgs("cwdp").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`CREATE DATABASE "cwdp"`).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := ensureDatabase(context.Background(), db, "cwdp"); err != nil {
		t.Fatalf("ensureDatabase: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEnsureDatabaseSkipsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM pg_database`).
		WithArgs("cwdp").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	if err := ensureDatabase(context.Background(), db, "cwdp"); err != nil {
		t.Fatalf("ensureDatabase: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
