package book

import (
	"context"

	"library-backend/internal/domains/book/model"
)

// Repository defines the data access operations for books.
type Repository interface {
	// Upsert creates or fully replaces the row keyed on the book's isbn in
	// a single atomic statement and reports whether it was an insert.
	// Repeated upserts on one isbn overwrite, never duplicate.
	Upsert(ctx context.Context, b *model.Book) (*model.Book, bool, error)

	// Save inserts-or-replaces without reporting which happened.
	Save(ctx context.Context, b *model.Book) (*model.Book, error)

	// FindByISBN returns the book with its author hydrated.
	// Returns ErrBookNotFound when no row exists.
	FindByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// FindAll returns all books with authors hydrated, in isbn order.
	FindAll(ctx context.Context) ([]model.Book, error)

	// DeleteByISBN is a no-op, not an error, for an absent isbn.
	DeleteByISBN(ctx context.Context, isbn string) error

	// ExistsByISBN checks existence without fetching the row.
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
}
