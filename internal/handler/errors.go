package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

// statusFor maps directory errors onto HTTP status codes.
func statusFor(err error) int {
	var ve *service.ValidationError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	// a show naming a missing venue or artist wraps the not-found
	// sentinel in a ConstraintError and is a conflict
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, repository.ErrVenueNotFound), errors.Is(err, repository.ErrArtistNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &he):
		return he.Code
	default:
		return http.StatusInternalServerError
	}
}

// reason explains err to the user without leaking internals.
func reason(err error) string {
	var ve *service.ValidationError
	var ce *repository.ConstraintError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &ce):
		if ce.Kind == repository.ForeignKey && ce.Constraint != "" {
			return ce.Constraint + " does not reference an existing record"
		}
		return ce.Error()
	case errors.Is(err, repository.ErrVenueNotFound):
		return "venue not found"
	case errors.Is(err, repository.ErrArtistNotFound):
		return "artist not found"
	case errors.Is(err, repository.ErrUnavailable):
		return "the database is unavailable, try again later"
	default:
		return "unexpected error"
	}
}

// NewHTTPErrorHandler renders the 404 and 500 pages, or a JSON error for
// JSON clients.  Server side failures are logged with their cause.
func NewHTTPErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := statusFor(err)
		msg := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		} else if code != http.StatusInternalServerError {
			msg = reason(err)
		}
		if code >= http.StatusInternalServerError {
			log.WithError(err).WithField("path", c.Request().URL.Path).Error("request failed")
		}

		var rerr error
		switch {
		case c.Request().Method == http.MethodHead:
			rerr = c.NoContent(code)
		case wantsJSON(c):
			rerr = c.JSON(code, echo.Map{"error": msg})
		case code == http.StatusNotFound:
			rerr = c.Render(code, "errors/404", Page{Title: "Not Found"})
		case code >= http.StatusInternalServerError:
			rerr = c.Render(code, "errors/500", Page{Title: "Server Error"})
		default:
			rerr = c.Render(code, "errors/error", Page{Title: http.StatusText(code), Data: errorView{Code: code, Message: msg}})
		}
		if rerr != nil {
			log.WithError(rerr).Error("writing error response failed")
		}
	}
}

type errorView struct {
	Code    int
	Message string
}
