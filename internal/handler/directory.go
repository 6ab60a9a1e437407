// Package handler exposes the HTTP handlers of the booking directory.
// Every page is served as HTML by default and as JSON when the client
// sends "Accept: application/json" or "?format=json".
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/service"
)

// DirectoryHandler bundles the directory service with a logger.
type DirectoryHandler struct {
	Dir *service.Directory
	Log logrus.FieldLogger
}

// NewDirectoryHandler constructs a DirectoryHandler and panics if the
// service is nil.
func NewDirectoryHandler(dir *service.Directory, log logrus.FieldLogger) *DirectoryHandler {
	if dir == nil {
		panic("nil directory passed to NewDirectoryHandler")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DirectoryHandler{Dir: dir, Log: log}
}

func ctxOf(c echo.Context) context.Context { return c.Request().Context() }

// homeWithFlash renders the home page carrying a create outcome.  The
// recent listings are best effort; a failure to load them leaves the
// page empty rather than hiding the flash.
func (h *DirectoryHandler) homeWithFlash(c echo.Context, status int, flash Flash, record any) error {
	if wantsJSON(c) {
		return respond(c, status, "home", Page{Flash: &flash, Data: record})
	}
	home, err := h.Dir.Home(ctxOf(c))
	if err != nil {
		h.Log.WithError(err).Warn("loading home listings failed")
	}
	return respond(c, status, "home", Page{Title: "Fyyur", Flash: &flash, Data: home})
}

// createdStatus is 201 for JSON clients; browsers get the home page with
// a plain 200.
func createdStatus(c echo.Context) int {
	if wantsJSON(c) {
		return http.StatusCreated
	}
	return http.StatusOK
}

// createFailed logs a failed create and reports it on the home page with
// a status matching the cause.
func (h *DirectoryHandler) createFailed(c echo.Context, what string, err error) error {
	status := statusFor(err)
	entry := h.Log.WithError(err).WithField("path", c.Request().URL.Path)
	if status >= 500 {
		entry.Error(what + " could not be listed")
	} else {
		entry.Info(what + " could not be listed")
	}
	return h.homeWithFlash(c, status, Flash{
		Kind:    "danger",
		Message: "An error occurred. " + what + " could not be listed: " + reason(err) + ".",
	}, nil)
}
