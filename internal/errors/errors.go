package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email sudah terdaftar")
	// ErrUserNotFound is returned when a user cannot be located by email or id.
	ErrUserNotFound = errors.New("user tidak ditemukan")
	// ErrOtpNotFound is returned when no OTP record exists for the user.
	ErrOtpNotFound = errors.New("kode otp tidak ditemukan")
	// ErrOtpMismatch is returned when the submitted code does not match.
	ErrOtpMismatch = errors.New("otp yang dimasukan salah")
	// ErrAlreadyVerified is returned when the account was verified before.
	ErrAlreadyVerified = errors.New("akun sudah terverifikasi")
	// ErrNotVerified is returned when logging in before OTP confirmation.
	ErrNotVerified = errors.New("email belum diverifikasi")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("password salah")
	// ErrCategoryNotFound is returned when a category id does not exist.
	ErrCategoryNotFound = errors.New("kategori tidak ditemukan")
	// ErrBookNotFound is returned when a book id does not exist.
	ErrBookNotFound = errors.New("buku tidak ditemukan")
	// ErrBorrowingNotFound is returned when no matching borrowing exists.
	ErrBorrowingNotFound = errors.New("peminjaman tidak ditemukan")
	// ErrAlreadyBorrowed is returned when the user still holds this book.
	ErrAlreadyBorrowed = errors.New("buku telah dipinjam dan belum dikembalikan oleh user")
	// ErrOutOfStock is returned when a borrow request finds zero stock.
	ErrOutOfStock = errors.New("stok tidak tersedia")
)

// Envelope is the JSON response shape shared by every endpoint.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// StatusOf maps a domain error to its HTTP status code. Stock exhaustion
// and unknown errors are treated as upstream failures and map to 502.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrOtpNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrBorrowingNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrOtpMismatch),
		errors.Is(err, ErrAlreadyBorrowed):
		return http.StatusBadRequest
	case errors.Is(err, ErrAlreadyVerified),
		errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, ErrNotVerified),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}
