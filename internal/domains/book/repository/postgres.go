package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	authormodel "library-backend/internal/domains/author/model"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/book/model"
	"library-backend/pkg/database"
)

// postgresRepository implements book.Repository with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a book repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

const selectBookQuery = `
	SELECT b.isbn, b.title, a.id, a.name, a.age
	FROM books b
	LEFT JOIN authors a ON b.author_id = a.id
`

type upsertResult struct {
	book     *model.Book
	inserted bool
}

// Upsert creates or replaces the row keyed on isbn. A single
// INSERT .. ON CONFLICT statement decides insert-vs-replace, so two
// concurrent upserts on one isbn can never both observe "absent" or hit a
// duplicate-key error. xmax = 0 distinguishes a fresh insert from a
// conflict update. The hydrating read runs in the same transaction.
func (r *postgresRepository) Upsert(ctx context.Context, b *model.Book) (*model.Book, bool, error) {
	result, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (upsertResult, error) {
		query := `
			INSERT INTO books (isbn, title, author_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (isbn) DO UPDATE SET title = EXCLUDED.title, author_id = EXCLUDED.author_id
			RETURNING (xmax = 0) AS inserted
		`

		var inserted bool
		if err := tx.QueryRow(ctx, query, b.ISBN, b.Title, authorID(b)).Scan(&inserted); err != nil {
			return upsertResult{}, fmt.Errorf("failed to upsert book: %w", err)
		}

		saved, err := scanBook(tx.QueryRow(ctx, selectBookQuery+` WHERE b.isbn = $1`, b.ISBN))
		if err != nil {
			return upsertResult{}, err
		}

		return upsertResult{book: saved, inserted: inserted}, nil
	})
	if err != nil {
		return nil, false, err
	}

	return result.book, result.inserted, nil
}

func (r *postgresRepository) Save(ctx context.Context, b *model.Book) (*model.Book, error) {
	saved, _, err := r.Upsert(ctx, b)
	return saved, err
}

func (r *postgresRepository) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	b, err := scanBook(r.pool.QueryRow(ctx, selectBookQuery+` WHERE b.isbn = $1`, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by isbn: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, selectBookQuery+` ORDER BY b.isbn`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) DeleteByISBN(ctx context.Context, isbn string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM books WHERE isbn = $1`, isbn); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	return nil
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, isbn).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}

	return exists, nil
}

// authorID extracts the nullable foreign key from the nested author.
func authorID(b *model.Book) *int64 {
	if b.Author == nil {
		return nil
	}
	return &b.Author.ID
}

// scanBook reads one joined row, leaving Author nil when the FK is null.
func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	var id *int64
	var name *string
	var age *int

	if err := row.Scan(&b.ISBN, &b.Title, &id, &name, &age); err != nil {
		return nil, err
	}

	if id != nil {
		b.Author = &authormodel.Author{
			ID:   *id,
			Name: *name,
			Age:  *age,
		}
	}

	return &b, nil
}
