package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "library-backend/internal/domains/author/model"
	"library-backend/internal/domains/book/model"
)

// fakeRepo is an in-memory book.Repository for service tests.
type fakeRepo struct {
	books     map[string]model.Book
	saveCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: map[string]model.Book{}}
}

func (r *fakeRepo) Upsert(_ context.Context, b *model.Book) (*model.Book, bool, error) {
	r.saveCalls++
	_, existed := r.books[b.ISBN]
	saved := *b
	r.books[saved.ISBN] = saved
	return &saved, !existed, nil
}

func (r *fakeRepo) Save(ctx context.Context, b *model.Book) (*model.Book, error) {
	saved, _, err := r.Upsert(ctx, b)
	return saved, err
}

func (r *fakeRepo) FindByISBN(_ context.Context, isbn string) (*model.Book, error) {
	b, ok := r.books[isbn]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &b, nil
}

func (r *fakeRepo) FindAll(_ context.Context) ([]model.Book, error) {
	all := []model.Book{}
	for _, b := range r.books {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ISBN < all[j].ISBN })
	return all, nil
}

func (r *fakeRepo) DeleteByISBN(_ context.Context, isbn string) error {
	delete(r.books, isbn)
	return nil
}

func (r *fakeRepo) ExistsByISBN(_ context.Context, isbn string) (bool, error) {
	_, ok := r.books[isbn]
	return ok, nil
}

const testISBN = "978-1-2345-6789-0"

func TestCreateOrUpdateReportsCreatedThenReplaced(t *testing.T) {
	svc := NewBookService(newFakeRepo())

	saved, created, err := svc.CreateOrUpdate(context.Background(), testISBN, &model.Book{Title: "Harry Potter"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, testISBN, saved.ISBN)
	assert.Equal(t, "Harry Potter", saved.Title)

	saved, created, err = svc.CreateOrUpdate(context.Background(), testISBN, &model.Book{Title: "UPDATED"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "UPDATED", saved.Title)

	found, err := svc.FindByISBN(context.Background(), testISBN)
	require.NoError(t, err)
	assert.Equal(t, "UPDATED", found.Title)
}

func TestCreateOrUpdatePathISBNOverridesBody(t *testing.T) {
	svc := NewBookService(newFakeRepo())

	saved, _, err := svc.CreateOrUpdate(context.Background(), testISBN, &model.Book{
		ISBN:  "something-else",
		Title: "Harry Potter",
	})
	require.NoError(t, err)

	assert.Equal(t, testISBN, saved.ISBN)

	_, err = svc.FindByISBN(context.Background(), "something-else")
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestPartialUpdateKeepsAbsentFields(t *testing.T) {
	svc := NewBookService(newFakeRepo())

	_, _, err := svc.CreateOrUpdate(context.Background(), testISBN, &model.Book{
		Title:  "Harry Potter",
		Author: &authormodel.Author{ID: 1, Name: "JK Rowling", Age: 67},
	})
	require.NoError(t, err)

	title := "UPDATED"
	merged, err := svc.PartialUpdate(context.Background(), testISBN, &model.BookPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "UPDATED", merged.Title)
	require.NotNil(t, merged.Author)
	assert.Equal(t, "JK Rowling", merged.Author.Name)
}

func TestPartialUpdateNotFoundDoesNotMutateStore(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBookService(repo)

	title := "UPDATED"
	_, err := svc.PartialUpdate(context.Background(), testISBN, &model.BookPatch{Title: &title})

	assert.ErrorIs(t, err, model.ErrBookNotFound)
	assert.Zero(t, repo.saveCalls)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := NewBookService(newFakeRepo())

	_, _, err := svc.CreateOrUpdate(context.Background(), testISBN, &model.Book{Title: "Harry Potter"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), testISBN))

	_, err = svc.FindByISBN(context.Background(), testISBN)
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	require.NoError(t, svc.Delete(context.Background(), testISBN))

	exists, err := svc.Exists(context.Background(), testISBN)
	require.NoError(t, err)
	assert.False(t, exists)
}
