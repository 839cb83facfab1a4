package book

import (
	"context"

	"library-backend/internal/domains/book/model"
)

// Service defines the business operations for the book domain.
type Service interface {
	// CreateOrUpdate upserts the book under the path isbn, which overrides
	// any isbn in the body. The boolean reports whether a new row was
	// created (true) or an existing one replaced (false); it drives the
	// 201-vs-200 choice in the handler. The decision is taken atomically
	// by the store, so concurrent upserts on one isbn cannot both create.
	CreateOrUpdate(ctx context.Context, isbn string, b *model.Book) (*model.Book, bool, error)

	FindAll(ctx context.Context) ([]model.Book, error)

	// FindByISBN returns ErrBookNotFound when the isbn does not exist.
	FindByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// PartialUpdate overlays the non-nil patch fields onto the stored book
	// and persists the merged result.
	// Returns ErrBookNotFound when absent; the store is not mutated.
	PartialUpdate(ctx context.Context, isbn string, patch *model.BookPatch) (*model.Book, error)

	// Delete is idempotent; deleting a non-existent isbn succeeds silently.
	Delete(ctx context.Context, isbn string) error

	Exists(ctx context.Context, isbn string) (bool, error)
}
