package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/directory"
)

//go:embed templates
var templateFS embed.FS

// Flash is the one-shot notice shown above a page.
type Flash struct {
	Kind    string `json:"kind"` // success or danger
	Message string `json:"message"`
}

// Page is what every template receives.  Data holds the page specific
// view-model, which is also the JSON body for JSON clients.
type Page struct {
	Title      string
	Flash      *Flash
	SearchTerm string
	Data       any
}

// Renderer renders the embedded pages inside the shared layout.  Each page
// is parsed into its own template set so their "content" blocks do not
// collide.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page under templates/pages.  Page names are
// their path below that directory without extension, e.g. "venues/show".
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	err := fs.WalkDir(templateFS, "templates/pages", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, "templates/pages/"), path.Ext(p))
		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		r.pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("no template %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

var templateFuncs = template.FuncMap{
	"datetime": formatDatetime,
	"join":     strings.Join,
	"genres":   directory.SplitGenres,
	"hasGenre": hasGenre,
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// formatDatetime renders a start time in the "full" or "medium" style.
// It accepts a time.Time or an RFC 3339 string and returns its input
// unchanged when it cannot read it.
func formatDatetime(value any, format string) string {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return v
		}
		t = parsed
	default:
		return fmt.Sprint(value)
	}
	t = t.UTC()
	switch format {
	case "full":
		return t.Format("Monday January 2, 2006 at 3:04PM")
	default:
		return t.Format("Mon 01, 02, 2006 3:04PM")
	}
}

func hasGenre(stored, g string) bool {
	for _, s := range directory.SplitGenres(stored) {
		if strings.EqualFold(s, g) {
			return true
		}
	}
	return false
}

// wantsJSON reports whether the client asked for JSON instead of HTML.
func wantsJSON(c echo.Context) bool {
	if c.QueryParam("format") == "json" {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// respond renders page with status, or encodes the page data for JSON
// clients.  A flash travels along as {"message": ..., "data": ...}.
func respond(c echo.Context, status int, name string, p Page) error {
	if wantsJSON(c) {
		if p.Flash != nil {
			return c.JSON(status, echo.Map{"message": p.Flash.Message, "kind": p.Flash.Kind, "data": p.Data})
		}
		return c.JSON(status, p.Data)
	}
	return c.Render(status, name, p)
}

// redirect sends browsers to target with 303 so the follow-up is a GET.
func redirect(c echo.Context, target string) error {
	return c.Redirect(http.StatusSeeOther, target)
}
