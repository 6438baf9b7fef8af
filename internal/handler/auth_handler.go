package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"perpus/internal/errors"
	"perpus/internal/middleware"
	"perpus/internal/model"
	"perpus/internal/service"
)

// AuthHandler handles registration, verification, and session endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a registration payload. The role comes from
// the route path, not the body.
type RegisterRequest struct {
	Name                 string `json:"nama" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// LoginRequest represents a login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// OtpConfirmationRequest represents an OTP confirmation payload.
type OtpConfirmationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   int    `json:"otp" validate:"required,min=100000,max=999999"`
}

// OtpResendRequest represents an OTP resend payload.
type OtpResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ProfileRequest represents a profile upsert payload.
type ProfileRequest struct {
	Bio     string `json:"bio" validate:"required"`
	Address string `json:"alamat" validate:"required"`
}

// RegisteredUser is the registration response projection.
type RegisteredUser struct {
	Name  string `json:"nama"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Register godoc
// @Summary Register a new account with the role from the path
// @Tags auth
// @Accept json
// @Produce json
// @Param role path string true "Role" Enums(user, petugas)
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 409 {object} errors.Envelope
// @Failure 502 {object} errors.Envelope
// @Router /auth/register/{role} [post]
func (h *AuthHandler) Register(c echo.Context) error {
	role := c.Param("role")
	if role != model.RoleUser && role != model.RolePetugas {
		return badRequest(c, "role harus user atau petugas", nil)
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		return respondError(c, err, "register gagal")
	}

	return ok(c, "registrasi berhasil, silakan verifikasi email anda", RegisteredUser{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

// Login godoc
// @Summary Login with a registered and verified email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "gagal login")
	}

	return ok(c, "berhasil login", token)
}

// Logout godoc
// @Summary Revoke the caller's bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, okClaims := middleware.CurrentClaims(c)
	if !okClaims {
		return c.JSON(http.StatusUnauthorized, errors.Envelope{Message: "invalid credential"})
	}

	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return respondError(c, err, "gagal logout")
	}
	return ok(c, "berhasil logout", nil)
}

// OtpConfirmation godoc
// @Summary Verify a new account with the emailed OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body OtpConfirmationRequest true "Confirmation data"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 409 {object} errors.Envelope
// @Router /auth/otp-confirmation [post]
func (h *AuthHandler) OtpConfirmation(c echo.Context) error {
	var req OtpConfirmationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	if err := h.authService.ConfirmOtp(c.Request().Context(), req.Email, req.Otp); err != nil {
		return respondError(c, err, "gagal verifikasi akun")
	}
	return ok(c, "berhasil verifikasi akun", nil)
}

// OtpResend godoc
// @Summary Re-send the OTP to an unverified email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body OtpResendRequest true "Resend data"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 409 {object} errors.Envelope
// @Router /auth/otp-resend [post]
func (h *AuthHandler) OtpResend(c echo.Context) error {
	var req OtpResendRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	user, err := h.authService.ResendOtp(c.Request().Context(), req.Email)
	if err != nil {
		return respondError(c, err, "gagal request ulang otp")
	}

	return ok(c, "berhasil request ulang otp", RegisteredUser{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

// Profile godoc
// @Summary Upsert the caller's profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileRequest true "Profile data"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /auth/profile [post]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims, okClaims := middleware.CurrentClaims(c)
	if !okClaims {
		return c.JSON(http.StatusUnauthorized, errors.Envelope{Message: "login diperlukan untuk mengubah profile"})
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "request tidak valid", err.Error())
	}

	if _, err := h.authService.SetProfile(c.Request().Context(), claims.UserID, req.Bio, req.Address); err != nil {
		return respondError(c, err, "gagal mengubah data profile")
	}
	return ok(c, "berhasil mengubah data profile", nil)
}
