package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"cwdp/internal/models"
)

func strPtr(s string) *string { return &s }

func TestSettingUpsertManyCommits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO settings`).
		WithArgs("company_name", "CWDP", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "created_at", "updated_at"}).AddRow("s1", "Nome da empresa", now, now))
	mock.ExpectQuery(`INSERT INTO settings`).
		WithArgs("contact_phone1", "+351 910 000 000", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "created_at", "updated_at"}).AddRow("s2", nil, now, now))
	mock.ExpectCommit()

	repo := NewSettingRepository(db)
	settings := []models.Setting{
		{Key: "company_name", Value: strPtr("CWDP")},
		{Key: "contact_phone1", Value: strPtr("+351 910 000 000")},
	}
	if err := repo.UpsertMany(context.Background(), settings); err != nil {
		t.Fatalf("UpsertMany: %v", err)
	}
	if settings[0].ID != "s1" || settings[0].Description == nil {
		t.Fatalf("expected returned fields to be filled, got %+v", settings[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSettingUpsertManyRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO settings`).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	repo := NewSettingRepository(db)
	if err := repo.UpsertMany(context.Background(), []models.Setting{{Key: "company_name"}}); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSettingGetByKeys(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`WHERE key = ANY\(\$1\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value", "description", "created_at", "updated_at"}).
			AddRow("s1", "site_logo_url", nil, "URL do logo principal do site", now, now))

	repo := NewSettingRepository(db)
	settings, err := repo.GetByKeys(context.Background(), []string{"site_logo_url"})
	if err != nil {
		t.Fatalf("GetByKeys: %v", err)
	}
	if len(settings) != 1 || settings[0].Value != nil {
		t.Fatalf("unexpected settings %+v", settings)
	}
}
