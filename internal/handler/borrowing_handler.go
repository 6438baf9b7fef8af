package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"perpus/internal/errors"
	"perpus/internal/middleware"
	"perpus/internal/service"
)

// BorrowingHandler handles the loan workflow endpoints.
type BorrowingHandler struct {
	borrowingService service.BorrowingService
}

// NewBorrowingHandler creates a new borrowing handler.
func NewBorrowingHandler(borrowingService service.BorrowingService) *BorrowingHandler {
	return &BorrowingHandler{borrowingService: borrowingService}
}

// BorrowRequest represents optional date overrides on borrow. Dates use
// the YYYY-MM-DD layout.
type BorrowRequest struct {
	LoanDate string `json:"tanggal_pinjam" validate:"omitempty,datetime=2006-01-02"`
	DueDate  string `json:"tanggal_kembali" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateBorrowingRequest mutates dates on an existing borrowing.
type UpdateBorrowingRequest struct {
	LoanDate string `json:"tanggal_pinjam" validate:"omitempty,datetime=2006-01-02"`
	DueDate  string `json:"tanggal_kembali" validate:"omitempty,datetime=2006-01-02"`
}

// Index godoc
// @Summary List borrowings
// @Tags peminjaman
// @Produce json
// @Success 200 {object} errors.Envelope
// @Router /peminjaman [get]
func (h *BorrowingHandler) Index(c echo.Context) error {
	borrowings, err := h.borrowingService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "gagal mengambil data peminjaman")
	}
	return ok(c, "berhasil mengambil data peminjaman", borrowings)
}

// Show godoc
// @Summary Get a borrowing with user and book details
// @Tags peminjaman
// @Produce json
// @Param id path int true "Borrowing ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /peminjaman/{id} [get]
func (h *BorrowingHandler) Show(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	detail, err := h.borrowingService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.StatusOf(err) == http.StatusNotFound {
			return notFoundMessage(c, fmt.Sprintf("peminjaman dengan id %d tidak ditemukan", id))
		}
		return respondError(c, err, "gagal mengambil data peminjaman")
	}
	return ok(c, "berhasil mengambil data peminjaman", detail)
}

// Store godoc
// @Summary Borrow a book
// @Tags peminjaman
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param request body BorrowRequest false "Optional date overrides"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /buku/{id}/peminjaman [post]
func (h *BorrowingHandler) Store(c echo.Context) error {
	claims, okClaims := middleware.CurrentClaims(c)
	if !okClaims {
		return c.JSON(http.StatusUnauthorized, errors.Envelope{Message: "invalid credential"})
	}

	bookID, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	var req BorrowRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	loanDate, err := parseOptionalDate(req.LoanDate)
	if err != nil {
		return badRequest(c, "tanggal_pinjam tidak valid", nil)
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return badRequest(c, "tanggal_kembali tidak valid", nil)
	}

	result, err := h.borrowingService.Borrow(c.Request().Context(), claims.UserID, bookID, loanDate, dueDate)
	if err != nil {
		if err == errors.ErrBookNotFound {
			return notFoundMessage(c, fmt.Sprintf("buku dengan id %d tidak ditemukan", bookID))
		}
		return respondError(c, err, "gagal meminjam buku")
	}
	return created(c, "sukses meminjam buku", result)
}

// ReturnBook godoc
// @Summary Return a borrowed book
// @Tags peminjaman
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /buku/{id}/pengembalian [get]
func (h *BorrowingHandler) ReturnBook(c echo.Context) error {
	claims, okClaims := middleware.CurrentClaims(c)
	if !okClaims {
		return c.JSON(http.StatusUnauthorized, errors.Envelope{Message: "invalid credential"})
	}

	bookID, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	result, err := h.borrowingService.Return(c.Request().Context(), claims.UserID, bookID)
	if err != nil {
		if err == errors.ErrBookNotFound {
			return notFoundMessage(c, fmt.Sprintf("buku dengan id %d tidak ditemukan", bookID))
		}
		if err == errors.ErrBorrowingNotFound {
			return notFoundMessage(c, "gagal mengembalikan buku")
		}
		return respondError(c, err, "gagal mengembalikan buku")
	}
	return ok(c, "berhasil mengembalikan buku", result)
}

// Update godoc
// @Summary Update loan dates on a borrowing
// @Tags peminjaman
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Borrowing ID"
// @Param request body UpdateBorrowingRequest true "Date changes"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /peminjaman/{id} [put]
func (h *BorrowingHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "id tidak valid", nil)
	}

	var req UpdateBorrowingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	loanDate, err := parseOptionalDate(req.LoanDate)
	if err != nil {
		return badRequest(c, "tanggal_pinjam tidak valid", nil)
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return badRequest(c, "tanggal_kembali tidak valid", nil)
	}

	borrowing, err := h.borrowingService.Update(c.Request().Context(), id, loanDate, dueDate)
	if err != nil {
		if errors.StatusOf(err) == http.StatusNotFound {
			return notFoundMessage(c, fmt.Sprintf("peminjaman dengan id %d tidak ditemukan", id))
		}
		return respondError(c, err, "gagal update data peminjaman")
	}
	return ok(c, "berhasil update peminjaman", borrowing)
}
