package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"perpus/internal/errors"
	"perpus/internal/service"
)

// BookHandler handles book catalog endpoints.
type BookHandler struct {
	bookService service.BookService
}

// NewBookHandler creates a new book handler.
func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// CreateBookRequest represents a book create payload. The tahun_terbit tag
// bounds the publication year to the supported historical range.
type CreateBookRequest struct {
	Title      string `json:"judul" validate:"required"`
	Summary    string `json:"ringkasan" validate:"required"`
	Year       string `json:"tahun_terbit" validate:"required,max=4,tahun_terbit"`
	Pages      int    `json:"halaman" validate:"required,min=0,max=999"`
	Stock      int    `json:"stock" validate:"min=0,max=999"`
	CategoryID uint   `json:"kategori_id" validate:"required"`
}

// UpdateBookRequest represents a partial book update; omitted fields stay
// unchanged.
type UpdateBookRequest struct {
	Title      *string `json:"judul" validate:"omitempty"`
	Summary    *string `json:"ringkasan" validate:"omitempty"`
	Year       *string `json:"tahun_terbit" validate:"omitempty,max=4,tahun_terbit"`
	Pages      *int    `json:"halaman" validate:"omitempty,min=0,max=999"`
	Stock      *int    `json:"stock" validate:"omitempty,min=0,max=999"`
	CategoryID *uint   `json:"kategori_id" validate:"omitempty"`
}

// Store godoc
// @Summary Create a book
// @Tags buku
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookRequest true "Book data"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /buku [post]
func (h *BookHandler) Store(c echo.Context) error {
	var req CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	book, err := h.bookService.Create(c.Request().Context(), service.CreateBookInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Year:       req.Year,
		Pages:      req.Pages,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		// A missing category is a validation failure on this route, caught
		// before any write.
		if err == errors.ErrCategoryNotFound {
			return badRequest(c, "kategori_id tidak ditemukan", nil)
		}
		return respondError(c, err, "gagal membuat buku")
	}
	return created(c, "sukses membuat data buku", book)
}

// Index godoc
// @Summary List books
// @Tags buku
// @Produce json
// @Success 200 {object} errors.Envelope
// @Router /buku [get]
func (h *BookHandler) Index(c echo.Context) error {
	books, err := h.bookService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "gagal mengambil data buku")
	}
	return ok(c, "berhasil mengambil data buku", books)
}

// Show godoc
// @Summary Get a book
// @Tags buku
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /buku/{id} [get]
func (h *BookHandler) Show(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	book, err := h.bookService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.StatusOf(err) == http.StatusNotFound {
			return notFoundMessage(c, fmt.Sprintf("buku dengan id %d tidak ditemukan", id))
		}
		return respondError(c, err, "gagal mengambil data buku")
	}
	return ok(c, "berhasil mengambil data buku", book)
}

// Update godoc
// @Summary Partially update a book
// @Tags buku
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param request body UpdateBookRequest true "Book data"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /buku/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	var req UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	book, err := h.bookService.Update(c.Request().Context(), id, service.UpdateBookInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Year:       req.Year,
		Pages:      req.Pages,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if err == errors.ErrCategoryNotFound {
			return badRequest(c, "kategori_id tidak ditemukan", nil)
		}
		if errors.StatusOf(err) == http.StatusNotFound {
			return notFoundMessage(c, fmt.Sprintf("buku dengan id %d tidak ditemukan", id))
		}
		return respondError(c, err, "gagal update data buku")
	}
	return ok(c, "berhasil update buku", book)
}

// Destroy godoc
// @Summary Delete a book
// @Tags buku
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /buku/{id} [delete]
func (h *BookHandler) Destroy(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	if err := h.bookService.Delete(c.Request().Context(), id); err != nil {
		if errors.StatusOf(err) == http.StatusNotFound {
			return notFoundMessage(c, fmt.Sprintf("buku dengan id %d tidak ditemukan", id))
		}
		return respondError(c, err, "gagal menghapus data buku")
	}
	return ok(c, "berhasil menghapus data buku", nil)
}
