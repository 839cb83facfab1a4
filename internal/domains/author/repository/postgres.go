package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/author/model"
	"library-backend/pkg/database"
)

// postgresRepository implements author.Repository with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates an author repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

// Save inserts when the id is zero, otherwise inserts-or-replaces on the
// given id. The second form matches the save contract: a caller-supplied
// id replaces the row when present and creates it when absent.
func (r *postgresRepository) Save(ctx context.Context, a *model.Author) (*model.Author, error) {
	var query string
	var args []interface{}

	if a.ID == 0 {
		query = `
			INSERT INTO authors (name, age)
			VALUES ($1, $2)
			RETURNING id, name, age
		`
		args = []interface{}{a.Name, a.Age}
	} else {
		query = `
			INSERT INTO authors (id, name, age)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, age = EXCLUDED.age
			RETURNING id, name, age
		`
		args = []interface{}{a.ID, a.Name, a.Age}
	}

	var saved model.Author
	err := r.pool.QueryRow(ctx, query, args...).Scan(&saved.ID, &saved.Name, &saved.Age)
	if err != nil {
		return nil, fmt.Errorf("failed to save author: %w", err)
	}

	return &saved, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
		SELECT id, name, age
		FROM authors
		WHERE id = $1
	`

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Age)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	query := `
		SELECT id, name, age
		FROM authors
		ORDER BY id
	`

	return r.queryAuthors(ctx, query)
}

// DeleteByID clears the author reference on the author's books and removes
// the row, both in one transaction. Absent ids delete zero rows and succeed.
func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE books SET author_id = NULL WHERE author_id = $1`, id); err != nil {
			return fmt.Errorf("failed to detach books from author: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
		}

		return nil
	})
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

// FindByAgeLessThan uses strict inequality; boundary-equal ages are excluded.
func (r *postgresRepository) FindByAgeLessThan(ctx context.Context, age int) ([]model.Author, error) {
	query := `
		SELECT id, name, age
		FROM authors
		WHERE age < $1
		ORDER BY id
	`

	return r.queryAuthors(ctx, query, age)
}

// FindByAgeGreaterThan uses strict inequality; boundary-equal ages are excluded.
func (r *postgresRepository) FindByAgeGreaterThan(ctx context.Context, age int) ([]model.Author, error) {
	query := `
		SELECT id, name, age
		FROM authors
		WHERE age > $1
		ORDER BY id
	`

	return r.queryAuthors(ctx, query, age)
}

func (r *postgresRepository) queryAuthors(ctx context.Context, query string, args ...interface{}) ([]model.Author, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Age); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}
