package migrations

import (
	"testing"
	"testing/fstest"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestParseMigrationFilename(t *testing.T) {
	version, name, err := parseMigrationFilename("0002_seed_settings.up.sql")
	if err != nil {
		t.Fatalf("parseMigrationFilename: %v", err)
	}
	if version != 2 || name != "seed_settings" {
		t.Fatalf("unexpected result %d %q", version, name)
	}

	if _, _, err := parseMigrationFilename("seed.up.sql"); err == nil {
		t.Fatalf("expected error for missing version")
	}
}

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	files, err := getMigrationFiles(migrationFiles)
	if err != nil {
		t.Fatalf("getMigrationFiles: %v", err)
	}
	if len(files) < 2 {
		t.Fatalf("expected embedded migrations, got %d", len(files))
	}
	for i := 1; i < len(files); i++ {
		if files[i-1].Version >= files[i].Version {
			t.Fatalf("migrations out of order: %+v", files)
		}
	}
	if files[0].Down == "" {
		t.Fatalf("expected down migration for %s", files[0].Name)
	}
}

func TestRunMigrationsAppliesOnlyPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	fsys := fstest.MapFS{
		"sql/0001_init.up.sql":   {Data: []byte("CREATE TABLE a (id INT)")},
		"sql/0002_more.up.sql":   {Data: []byte("CREATE TABLE b (id INT)")},
		"sql/0002_more.down.sql": {Data: []byte("DROP TABLE b")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE b \(id INT\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(2, "more").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := runMigrations(db, fsys); err != nil {
		t.Fatalf("runMigrations: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
