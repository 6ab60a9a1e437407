// Package router builds the Echo instance and registers the directory
// routes on it.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/middleware"
)

// Deps are the collaborators New wires into the router.  Redis may be nil,
// which turns caching and rate limiting off.
type Deps struct {
	Handler      *handler.DirectoryHandler
	Log          logrus.FieldLogger
	Redis        *redis.Client
	Cache        config.CacheConfig
	Limiter      config.RateLimitConfig
	EditorSecret string
}

// New returns an Echo instance with recovery, request logging, the HTML
// renderer, the error pages and every directory route.
func New(d Deps) (*echo.Echo, error) {
	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(d.Log)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(d.Log))

	RegisterRoutes(e, d.Handler, middleware.NewRedisCache(d.Cache, d.Redis))
	RegisterEditor(e, d.Handler,
		middleware.EditorAuth(d.EditorSecret),
		middleware.NewTokenBucket(d.Limiter, d.Redis),
	)
	return e, nil
}

// RegisterRoutes registers the read-only pages.  cache wraps only pages
// whose content changes on writes alone; pages that split shows into past
// and upcoming depend on the time of the request and are never cached.
func RegisterRoutes(e *echo.Echo, h *handler.DirectoryHandler, cache echo.MiddlewareFunc) {
	e.GET("/healthz", h.Health)

	e.GET("/", h.Home, cache)

	e.GET("/venues", h.Venues)
	e.GET("/venues/search", h.SearchVenues)
	e.POST("/venues/search", h.SearchVenues)
	e.GET("/venues/:id", h.ShowVenue)
	e.GET("/venues/create", h.NewVenueForm, cache)
	e.GET("/venues/:id/edit", h.EditVenueForm)

	e.GET("/artists", h.Artists, cache)
	e.GET("/artists/search", h.SearchArtists)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/:id", h.ShowArtist)
	e.GET("/artists/create", h.NewArtistForm, cache)
	e.GET("/artists/:id/edit", h.EditArtistForm)

	e.GET("/shows", h.Shows, cache)
	e.GET("/shows/create", h.NewShowForm, cache)
}
