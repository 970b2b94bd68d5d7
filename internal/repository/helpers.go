package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"cwdp/internal/interfaces"
)

var errNoFieldsToUpdate = errors.New("no fields to update")

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// updateBuilder collects "column = $n" assignments for a partial update.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func (b *updateBuilder) set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) build(table, id string) (string, []interface{}, error) {
	if len(b.sets) == 0 {
		return "", nil, errNoFieldsToUpdate
	}
	sets := append(b.sets, "updated_at = NOW()")
	args := append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		table,
		strings.Join(sets, ", "),
		len(args),
	)
	return query, args, nil
}

// execAffectingOne runs a write that must touch exactly one row identified
// by id. A miss is reported as sql.ErrNoRows.
func execAffectingOne(ctx context.Context, db *sql.DB, entity, action, query string, args ...interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error %s %s: %v", action, entity, err)
		return fmt.Errorf("failed to %s %s: %w", action, entity, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to %s %s: %w", action, entity, err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// listQuery appends the visibility filters, the display ordering and the
// optional limit to a SELECT over a display-ordered collection.
func listQuery(base string, opts interfaces.ListOptions) (string, []interface{}) {
	var where []string
	if opts.ActiveOnly {
		where = append(where, "is_active = TRUE")
	}
	if opts.FeaturedOnly {
		where = append(where, "is_featured = TRUE")
	}

	query := base
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY display_order, created_at, id"

	var args []interface{}
	if opts.Limit > 0 {
		query += " LIMIT $1"
		args = append(args, opts.Limit)
	}
	return query, args
}

// nullableText maps nil and empty strings to SQL NULL.
func nullableText(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func dateString(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format("2006-01-02")
	return &s
}
