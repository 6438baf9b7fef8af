package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"perpus/internal/errors"
)

// dateLayout is the wire format for caller-supplied loan and due dates.
const dateLayout = "2006-01-02"

func ok(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, errors.Envelope{Message: message, Data: data})
}

func created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, errors.Envelope{Message: message, Data: data})
}

func badRequest(c echo.Context, message string, errs interface{}) error {
	return c.JSON(http.StatusBadRequest, errors.Envelope{Message: message, Errors: errs})
}

// respondError maps a service error onto the API envelope. Domain errors
// keep their status from errors.StatusOf; anything else is an upstream
// failure reported with the handler's fallback message and the raw error
// attached for diagnostics. Two sentinels carry fixed message shapes: stock
// exhaustion is a 502 with the combined message and no errors payload, and
// an OTP mismatch is reported bare.
func respondError(c echo.Context, err error, fallback string) error {
	status := errors.StatusOf(err)
	switch {
	case err == errors.ErrOutOfStock:
		return c.JSON(status, errors.Envelope{Message: fallback + ", " + err.Error()})
	case err == errors.ErrOtpMismatch:
		return c.JSON(status, errors.Envelope{Message: err.Error()})
	case status == http.StatusBadGateway:
		return c.JSON(status, errors.Envelope{Message: fallback, Errors: err.Error()})
	case status == http.StatusBadRequest:
		return c.JSON(status, errors.Envelope{Message: fallback + ", " + err.Error()})
	default:
		return c.JSON(status, errors.Envelope{Message: err.Error()})
	}
}

// parseOptionalDate parses an optional YYYY-MM-DD value.
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
