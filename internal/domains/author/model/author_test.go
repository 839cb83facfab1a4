package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorDtoRoundTrip(t *testing.T) {
	entity := &Author{ID: 1, Name: "JK Rowling", Age: 67}

	roundTripped := entity.ToDto().ToEntity()

	assert.Equal(t, entity, roundTripped)
}

func TestAuthorDtoRoundTripZeroID(t *testing.T) {
	entity := &Author{Name: "Jon Jones", Age: 38}

	roundTripped := entity.ToDto().ToEntity()

	assert.Equal(t, entity, roundTripped)
}

func TestAuthorPatchAppliesOnlyPresentFields(t *testing.T) {
	current := Author{ID: 1, Name: "JK Rowling", Age: 67}
	name := "UPDATED"
	patch := &AuthorPatch{Name: &name}

	merged := patch.ApplyTo(current)

	assert.Equal(t, "UPDATED", merged.Name)
	assert.Equal(t, 67, merged.Age)
	assert.Equal(t, int64(1), merged.ID)
	// original value untouched
	assert.Equal(t, "JK Rowling", current.Name)
}

func TestAuthorPatchEmptyChangesNothing(t *testing.T) {
	current := Author{ID: 1, Name: "JK Rowling", Age: 67}

	merged := (&AuthorPatch{}).ApplyTo(current)

	assert.Equal(t, current, merged)
}

func TestAuthorPatchAgeOnly(t *testing.T) {
	current := Author{ID: 2, Name: "Steve Jobs", Age: 51}
	age := 52
	patch := &AuthorPatch{Age: &age}

	merged := patch.ApplyTo(current)

	assert.Equal(t, "Steve Jobs", merged.Name)
	assert.Equal(t, 52, merged.Age)
}

func TestAuthorDtoValidateRequiresName(t *testing.T) {
	assert.Error(t, AuthorDto{Age: 67}.Validate())
	assert.NoError(t, AuthorDto{Name: "JK Rowling", Age: 67}.Validate())
}
