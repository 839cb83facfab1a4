package author

import (
	"context"

	"library-backend/internal/domains/author/model"
)

// Repository defines the data access operations for authors.
type Repository interface {
	// Save inserts the author when its ID is zero (the store assigns one)
	// and otherwise inserts-or-replaces the row with that id.
	// Returns the persisted state.
	Save(ctx context.Context, a *model.Author) (*model.Author, error)

	// FindByID returns ErrAuthorNotFound when no row exists.
	FindByID(ctx context.Context, id int64) (*model.Author, error)

	// FindAll returns all authors in id order.
	FindAll(ctx context.Context) ([]model.Author, error)

	// DeleteByID removes the author and clears the author reference on its
	// books. Deleting an absent id is a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByAgeLessThan returns authors strictly younger than age.
	FindByAgeLessThan(ctx context.Context, age int) ([]model.Author, error)

	// FindByAgeGreaterThan returns authors strictly older than age.
	FindByAgeGreaterThan(ctx context.Context, age int) ([]model.Author, error)
}
