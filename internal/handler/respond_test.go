package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"perpus/internal/errors"
)

func recordError(t *testing.T, err error, fallback string) (int, errors.Envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, respondError(c, err, fallback))

	var envelope errors.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec.Code, envelope
}

func TestRespondError(t *testing.T) {
	t.Run("out of stock is a 502 with the combined message", func(t *testing.T) {
		code, envelope := recordError(t, errors.ErrOutOfStock, "gagal meminjam buku")

		assert.Equal(t, http.StatusBadGateway, code)
		assert.Equal(t, "gagal meminjam buku, stok tidak tersedia", envelope.Message)
		assert.Nil(t, envelope.Errors)
	})

	t.Run("otp mismatch is reported bare", func(t *testing.T) {
		code, envelope := recordError(t, errors.ErrOtpMismatch, "gagal verifikasi akun")

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "otp yang dimasukan salah", envelope.Message)
	})

	t.Run("other bad requests combine fallback and error", func(t *testing.T) {
		code, envelope := recordError(t, errors.ErrAlreadyBorrowed, "gagal meminjam buku")

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "gagal meminjam buku, buku telah dipinjam dan belum dikembalikan oleh user", envelope.Message)
	})

	t.Run("unknown errors are upstream failures with diagnostics", func(t *testing.T) {
		code, envelope := recordError(t, fmt.Errorf("driver broke"), "gagal membuat buku")

		assert.Equal(t, http.StatusBadGateway, code)
		assert.Equal(t, "gagal membuat buku", envelope.Message)
		assert.Equal(t, "driver broke", envelope.Errors)
	})

	t.Run("domain errors keep their own message", func(t *testing.T) {
		code, envelope := recordError(t, errors.ErrNotVerified, "gagal login")

		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "email belum diverifikasi", envelope.Message)
	})
}
