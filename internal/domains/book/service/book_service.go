package service

import (
	"context"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/book/model"
)

// bookService implements book.Service.
type bookService struct {
	repo book.Repository
}

// NewBookService creates a book service instance.
func NewBookService(repo book.Repository) book.Service {
	return &bookService{
		repo: repo,
	}
}

// CreateOrUpdate upserts under the path isbn. The insert-vs-replace
// decision is delegated to the store's atomic upsert rather than a
// check-then-save pair.
func (s *bookService) CreateOrUpdate(ctx context.Context, isbn string, b *model.Book) (*model.Book, bool, error) {
	b.ISBN = isbn
	return s.repo.Upsert(ctx, b)
}

func (s *bookService) FindAll(ctx context.Context) ([]model.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	return s.repo.FindByISBN(ctx, isbn)
}

// PartialUpdate loads the stored book, overlays the non-nil patch fields
// and persists the merged value. Absent fields stay unchanged.
func (s *bookService) PartialUpdate(ctx context.Context, isbn string, patch *model.BookPatch) (*model.Book, error) {
	current, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	merged := patch.ApplyTo(*current)
	return s.repo.Save(ctx, &merged)
}

func (s *bookService) Delete(ctx context.Context, isbn string) error {
	return s.repo.DeleteByISBN(ctx, isbn)
}

func (s *bookService) Exists(ctx context.Context, isbn string) (bool, error) {
	return s.repo.ExistsByISBN(ctx, isbn)
}
