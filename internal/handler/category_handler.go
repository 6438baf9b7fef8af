package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"perpus/internal/errors"
	"perpus/internal/service"
)

// CategoryHandler handles category catalog endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a category create/update payload.
type CategoryRequest struct {
	Name string `json:"nama" validate:"required"`
}

// Store godoc
// @Summary Create a category
// @Tags kategori
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /kategori [post]
func (h *CategoryHandler) Store(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return respondError(c, err, "gagal membuat kategori")
	}
	return created(c, "sukses membuat kategori", category)
}

// Index godoc
// @Summary List categories
// @Tags kategori
// @Produce json
// @Success 200 {object} errors.Envelope
// @Router /kategori [get]
func (h *CategoryHandler) Index(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "gagal mengambil data kategori")
	}
	return ok(c, "berhasil mengambil data kategori", categories)
}

// Show godoc
// @Summary Get a category with its books
// @Tags kategori
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /kategori/{id} [get]
func (h *CategoryHandler) Show(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.StatusOf(err) == http.StatusNotFound {
			return notFoundMessage(c, fmt.Sprintf("kategori dengan id %d tidak ditemukan", id))
		}
		return respondError(c, err, "gagal mengambil data kategori")
	}
	return ok(c, "berhasil mengambil data kategori", category)
}

// Update godoc
// @Summary Update a category
// @Tags kategori
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /kategori/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		if errors.StatusOf(err) == http.StatusNotFound {
			return notFoundMessage(c, fmt.Sprintf("kategori dengan id %d tidak ditemukan", id))
		}
		return respondError(c, err, "gagal update data kategori")
	}
	return ok(c, "berhasil update kategori", category)
}

// Destroy godoc
// @Summary Delete a category
// @Tags kategori
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /kategori/{id} [delete]
func (h *CategoryHandler) Destroy(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		if errors.StatusOf(err) == http.StatusNotFound {
			return notFoundMessage(c, fmt.Sprintf("kategori dengan id %d tidak ditemukan", id))
		}
		return respondError(c, err, "gagal menghapus data kategori")
	}
	return ok(c, "berhasil menghapus data kategori", nil)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func notFoundMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, errors.Envelope{Message: message})
}
