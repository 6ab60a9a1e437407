package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/utils"
)

// EditorCookie is the cookie EditorAuth falls back to when no
// Authorization header is sent.  Browsers submitting plain forms cannot set
// headers.
const EditorCookie = "editor_token"

// EditorAuth returns an Echo middleware that requires a valid editor token
// on the routes it wraps.  The token is read from an "Authorization:
// Bearer" header or the editor_token cookie and must be signed with
// secret and carry the EDITOR role.  An empty secret leaves the routes
// open.
func EditorAuth(secret string) echo.MiddlewareFunc {
	if secret == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "editor token required")
			}
			claims, err := utils.ParseEditorToken(secret, raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid editor token").SetInternal(err)
			}
			c.Set(editorKey, claims.Subject)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if ck, err := c.Cookie(EditorCookie); err == nil {
		return ck.Value
	}
	return ""
}
