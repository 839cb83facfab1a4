package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	authormodel "library-backend/internal/domains/author/model"
)

func TestBookDtoRoundTripWithAuthor(t *testing.T) {
	entity := &Book{
		ISBN:  "978-1-2345-6789-0",
		Title: "Harry Potter",
		Author: &authormodel.Author{
			ID:   1,
			Name: "JK Rowling",
			Age:  67,
		},
	}

	roundTripped := entity.ToDto().ToEntity()

	assert.Equal(t, entity, roundTripped)
}

func TestBookDtoRoundTripWithoutAuthor(t *testing.T) {
	entity := &Book{
		ISBN:  "978-1-2345-6789-0",
		Title: "Harry Potter",
	}

	dto := entity.ToDto()
	assert.Nil(t, dto.Author)

	roundTripped := dto.ToEntity()
	assert.Equal(t, entity, roundTripped)
	assert.Nil(t, roundTripped.Author)
}

func TestBookPatchTitleOnlyKeepsAuthor(t *testing.T) {
	current := Book{
		ISBN:   "978-1-2345-6789-0",
		Title:  "Harry Potter",
		Author: &authormodel.Author{ID: 1, Name: "JK Rowling", Age: 67},
	}
	title := "UPDATED"
	patch := &BookPatch{Title: &title}

	merged := patch.ApplyTo(current)

	assert.Equal(t, "UPDATED", merged.Title)
	assert.Equal(t, current.Author, merged.Author)
	assert.Equal(t, current.ISBN, merged.ISBN)
}

func TestBookPatchReplacesAuthor(t *testing.T) {
	current := Book{
		ISBN:   "978-1-2345-6789-0",
		Title:  "Harry Potter",
		Author: &authormodel.Author{ID: 1, Name: "JK Rowling", Age: 67},
	}
	patch := &BookPatch{
		Author: &authormodel.AuthorDto{ID: 2, Name: "Jon Jones", Age: 38},
	}

	merged := patch.ApplyTo(current)

	assert.Equal(t, "Harry Potter", merged.Title)
	assert.Equal(t, int64(2), merged.Author.ID)
	assert.Equal(t, "Jon Jones", merged.Author.Name)
}

func TestBookDtoValidateRequiresTitle(t *testing.T) {
	assert.Error(t, BookDto{ISBN: "978-1-2345-6789-0"}.Validate())
	assert.NoError(t, BookDto{ISBN: "978-1-2345-6789-0", Title: "Harry Potter"}.Validate())
}
