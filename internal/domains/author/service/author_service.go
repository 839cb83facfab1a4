package service

import (
	"context"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/author/model"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates an author service instance.
// The repository is an explicit constructor argument, no ambient container.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	return s.repo.Save(ctx, a)
}

func (s *authorService) FindAll(ctx context.Context) ([]model.Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *authorService) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	return s.repo.FindByID(ctx, id)
}

// Update performs a full-field replace. The path id overrides any id
// carried in the body.
func (s *authorService) Update(ctx context.Context, id int64, a *model.Author) (*model.Author, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrAuthorNotFound
	}

	a.ID = id
	return s.repo.Save(ctx, a)
}

// PartialUpdate loads the stored author, overlays the non-nil patch fields
// and persists the merged value. Absent fields stay unchanged.
func (s *authorService) PartialUpdate(ctx context.Context, id int64, patch *model.AuthorPatch) (*model.Author, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := patch.ApplyTo(*current)
	return s.repo.Save(ctx, &merged)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *authorService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *authorService) FindByAgeLessThan(ctx context.Context, age int) ([]model.Author, error) {
	return s.repo.FindByAgeLessThan(ctx, age)
}

func (s *authorService) FindByAgeGreaterThan(ctx context.Context, age int) ([]model.Author, error) {
	return s.repo.FindByAgeGreaterThan(ctx, age)
}
