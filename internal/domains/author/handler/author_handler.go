package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/author/model"
	"library-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// Create - POST /authors
// Always 201 with the saved author; the store assigns the id.
func (h *AuthorHandler) Create(c *gin.Context) {
	var dto model.AuthorDto

	if err := c.BindJSON(&dto); err != nil {
		return
	}

	if err := dto.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	saved, err := h.service.Create(c.Request.Context(), dto.ToEntity())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, saved.ToDto())
}

// List - GET /authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, toDtos(authors))
}

// GetByID - GET /authors/:id
// 404 with empty body when the id does not exist.
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, a.ToDto())
}

// Update - PUT /authors/:id
// Full replace; the path id overrides the body id.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var dto model.AuthorDto
	if err := c.BindJSON(&dto); err != nil {
		return
	}

	if err := dto.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, dto.ToEntity())
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, updated.ToDto())
}

// PartialUpdate - PATCH /authors/:id
// Merges only the fields present in the body; absent fields are unchanged.
func (h *AuthorHandler) PartialUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch model.AuthorPatch
	if err := c.BindJSON(&patch); err != nil {
		return
	}

	merged, err := h.service.PartialUpdate(c.Request.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, merged.ToDto())
}

// Delete - DELETE /authors/:id
// 204 whether or not the author existed.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUnderAge - GET /authors/age/under/:age
func (h *AuthorHandler) ListUnderAge(c *gin.Context) {
	age, ok := parseAge(c)
	if !ok {
		return
	}

	authors, err := h.service.FindByAgeLessThan(c.Request.Context(), age)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, toDtos(authors))
}

// ListOverAge - GET /authors/age/over/:age
func (h *AuthorHandler) ListOverAge(c *gin.Context) {
	age, ok := parseAge(c)
	if !ok {
		return
	}

	authors, err := h.service.FindByAgeGreaterThan(c.Request.Context(), age)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, toDtos(authors))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return 0, false
	}
	return id, true
}

func parseAge(c *gin.Context) (int, bool) {
	age, err := strconv.Atoi(c.Param("age"))
	if err != nil {
		response.BadRequest(c, "invalid age")
		return 0, false
	}
	return age, true
}

func toDtos(authors []model.Author) []model.AuthorDto {
	dtos := make([]model.AuthorDto, len(authors))
	for i, a := range authors {
		dtos[i] = *a.ToDto()
	}
	return dtos
}
