package author

import (
	"context"

	"library-backend/internal/domains/author/model"
)

// Service defines the business operations for the author domain.
// Returns entities only; HTTP concerns stay in the handler.
type Service interface {
	// Create persists a new author. Callers omit the id for true creation;
	// a supplied id follows the store's save semantics (replace).
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	FindAll(ctx context.Context) ([]model.Author, error)

	// FindByID returns ErrAuthorNotFound when the id does not exist.
	FindByID(ctx context.Context, id int64) (*model.Author, error)

	// Update replaces all fields of an existing author. The path id wins
	// over any id in the body. Returns ErrAuthorNotFound when absent.
	Update(ctx context.Context, id int64, a *model.Author) (*model.Author, error)

	// PartialUpdate overlays the non-nil patch fields onto the stored
	// author and persists the merged result.
	// Returns ErrAuthorNotFound when absent; the store is not mutated.
	PartialUpdate(ctx context.Context, id int64, patch *model.AuthorPatch) (*model.Author, error)

	// Delete is idempotent; deleting a non-existent id succeeds silently.
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)

	FindByAgeLessThan(ctx context.Context, age int) ([]model.Author, error)
	FindByAgeGreaterThan(ctx context.Context, age int) ([]model.Author, error)
}
