// Package server assembles the application: configuration, the backend
// client, the media cache, session middleware and every handler, wired
// onto a single echo instance.
package server

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/internal/config"
	"github.com/Amityadav08/SLVNK-Frontend/internal/handlers"
	"github.com/Amityadav08/SLVNK-Frontend/internal/logging"
	"github.com/Amityadav08/SLVNK-Frontend/internal/media"
	"github.com/Amityadav08/SLVNK-Frontend/internal/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     config.Provider
	Backend *api.Client

	mediaCache *media.Cache

	pageHandler    *handlers.PageHandler
	authHandler    *handlers.AuthHandler
	signupHandler  *handlers.SignupHandler
	searchHandler  *handlers.SearchHandler
	profileHandler *handlers.ProfileHandler
	mediaHandler   *handlers.MediaHandler
	adminHandler   *handlers.AdminHandler
}

// New creates a new Server instance.
func New() *Server {
	logging.New() // Initialize the structured logger
	cfg := config.New()

	backend := api.New(cfg.GetAPIBaseURL(), cfg.GetRequestTimeout())

	// The media cache persists across restarts; BasePathFs keeps every
	// cache key inside the configured directory.
	cacheFs := afero.NewBasePathFs(afero.NewOsFs(), cfg.GetMediaCacheDir())
	mediaCache := media.NewCache(cacheFs, backend)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Logger)

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	// Serve static files from the "web/static" directory.
	e.Static("/static", "web/static")

	return &Server{
		E:              e,
		Cfg:            cfg,
		Backend:        backend,
		mediaCache:     mediaCache,
		pageHandler:    handlers.NewPageHandler(),
		authHandler:    handlers.NewAuthHandler(backend),
		signupHandler:  handlers.NewSignupHandler(backend),
		searchHandler:  handlers.NewSearchHandler(backend),
		profileHandler: handlers.NewProfileHandler(backend),
		mediaHandler:   handlers.NewMediaHandler(mediaCache),
		adminHandler:   handlers.NewAdminHandler(backend, cfg.GetAdminPassword()),
	}
}

// MediaCache is a getter for the server's media cache, useful for testing.
func (s *Server) MediaCache() *media.Cache {
	return s.mediaCache
}
