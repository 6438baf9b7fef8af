package router

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"perpus/internal/auth"
	"perpus/internal/config"
	"perpus/internal/handler"
	"perpus/internal/logger"
	"perpus/internal/middleware"
)

// yearPattern bounds tahun_terbit to a 4-char numeric year no later
// than 2023.
var yearPattern = regexp.MustCompile(`^(\d{1,3}|1\d{3}|20[01]\d|202[0-3])$`)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	borrowingHandler *handler.BorrowingHandler,
) {
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(rate.Limit(20))))
	e.Use(echoprometheus.NewMiddleware("perpus"))
	e.Use(requestLogger())

	e.Validator = NewCustomValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Session middleware chain for protected routes.
	authed := []echo.MiddlewareFunc{
		middleware.JWT(cfg.JWTSecret),
		middleware.RequireSession(tokenStore),
	}
	petugas := append(append([]echo.MiddlewareFunc{}, authed...), middleware.RequirePetugas())

	// Auth
	api.POST("/auth/register/:role", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/otp-confirmation", authHandler.OtpConfirmation)
	api.POST("/auth/otp-resend", authHandler.OtpResend)
	api.GET("/auth/logout", authHandler.Logout, authed...)
	api.POST("/auth/profile", authHandler.Profile, authed...)

	// Category catalog: reads are public, mutation is staff only.
	api.GET("/kategori", categoryHandler.Index)
	api.GET("/kategori/:id", categoryHandler.Show)
	api.POST("/kategori", categoryHandler.Store, petugas...)
	api.PUT("/kategori/:id", categoryHandler.Update, petugas...)
	api.DELETE("/kategori/:id", categoryHandler.Destroy, petugas...)

	// Book catalog
	api.GET("/buku", bookHandler.Index)
	api.GET("/buku/:id", bookHandler.Show)
	api.POST("/buku", bookHandler.Store, petugas...)
	api.PUT("/buku/:id", bookHandler.Update, petugas...)
	api.DELETE("/buku/:id", bookHandler.Destroy, petugas...)

	// Borrowing workflow
	api.GET("/peminjaman", borrowingHandler.Index)
	api.GET("/peminjaman/:id", borrowingHandler.Show)
	api.PUT("/peminjaman/:id", borrowingHandler.Update, authed...)
	api.POST("/buku/:id/peminjaman", borrowingHandler.Store, authed...)
	api.GET("/buku/:id/pengembalian", borrowingHandler.ReturnBook, authed...)
}

func requestLogger() echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogLatency:   true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log := logger.Get()
			evt := log.Info()
			if v.Error != nil {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("request_id", v.RequestID).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo and registers the publication
// year rule.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator builds the request validator.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("tahun_terbit", func(fl validator.FieldLevel) bool {
		return yearPattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
