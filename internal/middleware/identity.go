package middleware

import "github.com/labstack/echo/v4"

// editorKey is where EditorAuth stores the token subject.
const editorKey = "editor"

// editorSubject returns the subject of the verified editor token, or
// "guest" when the route is open or no token was checked.
func editorSubject(c echo.Context) string {
	if s, ok := c.Get(editorKey).(string); ok && s != "" {
		return s
	}
	return "guest"
}
