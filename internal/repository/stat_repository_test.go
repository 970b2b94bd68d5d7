package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

var statRowColumns = []string{"id", "icon_name", "number", "label", "suffix", "display_order", "is_active", "created_at", "updated_at"}

func TestStatCreateReturnsGeneratedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO stats`).
		WithArgs(models.IconBuilding2, 150, "Projetos Realizados", "+", 0, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("s1", now, now))

	stat := models.CreateStatRequest{IconName: models.IconBuilding2, Number: 150, Label: "Projetos Realizados"}.Stat()
	if err := NewStatRepository(db).Create(context.Background(), stat); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if stat.ID != "s1" {
		t.Fatalf("unexpected stat %+v", stat)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStatListActiveOnlyFiltersAndOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM stats WHERE is_active = TRUE ORDER BY display_order, created_at, id`)).
		WillReturnRows(sqlmock.NewRows(statRowColumns).
			AddRow("s1", "Building2", 150, "Projetos Realizados", "+", 0, true, now, now).
			AddRow("s2", "Users", 40, "Especialistas", "+", 1, true, now, now))

	stats, err := NewStatRepository(db).List(context.Background(), interfaces.ListOptions{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stats) != 2 || stats[0].IconName != models.IconBuilding2 || stats[1].Number != 40 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStatListAllHasNoFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM stats ORDER BY display_order, created_at, id`)).
		WillReturnRows(sqlmock.NewRows(statRowColumns))

	if _, err := NewStatRepository(db).List(context.Background(), interfaces.ListOptions{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStatPartialUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE stats SET number = $1, is_active = $2, updated_at = NOW() WHERE id = $3`)).
		WithArgs(200, false, "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	number, inactive := 200, false
	if err := NewStatRepository(db).Update(context.Background(), "s1", &models.UpdateStatRequest{Number: &number, IsActive: &inactive}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStatDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM stats`).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := NewStatRepository(db).Delete(context.Background(), "missing"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
