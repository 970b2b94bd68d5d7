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

var galleryRowColumns = []string{
	"id", "title", "description", "image_url", "category", "is_logo", "is_footer_logo",
	"display_order", "is_active", "created_at", "updated_at",
}

func TestGalleryCreateStoresEmptyDescriptionAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO gallery`).
		WithArgs("Fachada", nil, "https://media.cwdp.pt/gallery/f.png", "obras", false, false, 1, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("g1", now, now))

	empty := ""
	item := &models.GalleryItem{
		Title:        "Fachada",
		Description:  &empty,
		ImageURL:     "https://media.cwdp.pt/gallery/f.png",
		Category:     "obras",
		DisplayOrder: 1,
		IsActive:     true,
	}
	if err := NewGalleryRepository(db).Create(context.Background(), item); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ID != "g1" {
		t.Fatalf("expected generated id, got %+v", item)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGalleryListActiveOnlyFiltersAndOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM gallery WHERE is_active = TRUE ORDER BY display_order, created_at, id`)).
		WillReturnRows(sqlmock.NewRows(galleryRowColumns).
			AddRow("g1", "Logo", nil, "https://media.cwdp.pt/logos/l.png", "logos", true, false, 0, true, now, now).
			AddRow("g2", "Obra", "Moradia", "https://media.cwdp.pt/gallery/o.png", "obras", false, false, 1, true, now, now))

	items, err := NewGalleryRepository(db).List(context.Background(), interfaces.ListOptions{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != "g1" || !items[0].IsLogo {
		t.Fatalf("unexpected items %+v", items)
	}
	if items[0].Description != nil {
		t.Fatalf("expected NULL description to scan as nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGalleryListIgnoresFeaturedFlag(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM gallery ORDER BY display_order, created_at, id`)).
		WillReturnRows(sqlmock.NewRows(galleryRowColumns))

	if _, err := NewGalleryRepository(db).List(context.Background(), interfaces.ListOptions{FeaturedOnly: true}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGalleryGetMissingIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM gallery WHERE id = \$1`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	if _, err := NewGalleryRepository(db).GetByID(context.Background(), "missing"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestGalleryDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM gallery`).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := NewGalleryRepository(db).Delete(context.Background(), "missing"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
