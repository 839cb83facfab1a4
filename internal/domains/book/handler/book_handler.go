package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/book/model"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// Upsert - PUT /books/:isbn
// 201 when the isbn was absent, 200 when an existing book was replaced.
func (h *BookHandler) Upsert(c *gin.Context) {
	isbn := c.Param("isbn")

	var dto model.BookDto
	if err := c.BindJSON(&dto); err != nil {
		return
	}

	if err := dto.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	saved, created, err := h.service.CreateOrUpdate(c.Request.Context(), isbn, dto.ToEntity())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, saved.ToDto())
}

// List - GET /books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	dtos := make([]model.BookDto, len(books))
	for i, b := range books {
		dtos[i] = *b.ToDto()
	}

	c.JSON(http.StatusOK, dtos)
}

// GetByISBN - GET /books/:isbn
// 404 with empty body when the isbn does not exist.
func (h *BookHandler) GetByISBN(c *gin.Context) {
	isbn := c.Param("isbn")

	b, err := h.service.FindByISBN(c.Request.Context(), isbn)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, b.ToDto())
}

// PartialUpdate - PATCH /books/:isbn
// Merges only the fields present in the body; absent fields are unchanged.
func (h *BookHandler) PartialUpdate(c *gin.Context) {
	isbn := c.Param("isbn")

	var patch model.BookPatch
	if err := c.BindJSON(&patch); err != nil {
		return
	}

	merged, err := h.service.PartialUpdate(c.Request.Context(), isbn, &patch)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, merged.ToDto())
}

// Delete - DELETE /books/:isbn
// 204 whether or not the book existed.
func (h *BookHandler) Delete(c *gin.Context) {
	isbn := c.Param("isbn")

	if err := h.service.Delete(c.Request.Context(), isbn); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
