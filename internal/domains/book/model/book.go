package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	authormodel "library-backend/internal/domains/author/model"
)

// Book is the persisted entity. The isbn is the caller-supplied natural
// key. A book may exist without an author.
type Book struct {
	ISBN   string `db:"isbn"`
	Title  string `db:"title"`
	Author *authormodel.Author
}

// BookDto is the external representation. The author relationship is
// carried as a nested AuthorDto rather than a raw foreign key.
type BookDto struct {
	ISBN   string                 `json:"isbn"`
	Title  string                 `json:"title"`
	Author *authormodel.AuthorDto `json:"author"`
}

// BookPatch carries a partial update. Nil fields are left unchanged.
type BookPatch struct {
	Title  *string                `json:"title"`
	Author *authormodel.AuthorDto `json:"author"`
}

// Validate checks presence only.
func (d BookDto) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
	)
}

// ToDto converts the entity to its transfer shape, mapping the nested
// author when present.
func (b *Book) ToDto() *BookDto {
	dto := &BookDto{
		ISBN:  b.ISBN,
		Title: b.Title,
	}
	if b.Author != nil {
		dto.Author = b.Author.ToDto()
	}
	return dto
}

// ToEntity converts the transfer shape back to an entity.
// Round-trip with ToDto is lossless, including a nil author.
func (d *BookDto) ToEntity() *Book {
	b := &Book{
		ISBN:  d.ISBN,
		Title: d.Title,
	}
	if d.Author != nil {
		b.Author = d.Author.ToEntity()
	}
	return b
}

// ApplyTo builds a new Book from the current one plus the non-nil
// patch fields.
func (p *BookPatch) ApplyTo(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = p.Author.ToEntity()
	}
	return b
}
