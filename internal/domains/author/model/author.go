package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Author is the persisted entity. The id is store-assigned on first save
// and immutable afterwards.
type Author struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Age  int    `db:"age"`
}

// AuthorDto is the external representation exchanged over HTTP.
// Mirrors the entity field for field.
type AuthorDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// AuthorPatch carries a partial update. Nil fields are left unchanged
// on the stored entity.
type AuthorPatch struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// Validate checks presence only.
func (d AuthorDto) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
	)
}

// ToDto converts the entity to its transfer shape.
func (a *Author) ToDto() *AuthorDto {
	return &AuthorDto{
		ID:   a.ID,
		Name: a.Name,
		Age:  a.Age,
	}
}

// ToEntity converts the transfer shape back to an entity.
// Round-trip with ToDto is lossless.
func (d *AuthorDto) ToEntity() *Author {
	return &Author{
		ID:   d.ID,
		Name: d.Name,
		Age:  d.Age,
	}
}

// ApplyTo builds a new Author from the current one plus the non-nil
// patch fields.
func (p *AuthorPatch) ApplyTo(a Author) Author {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	return a
}
