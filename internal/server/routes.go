package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Amityadav08/SLVNK-Frontend/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()
	requireUser := middleware.RequireUser(s.Backend)
	requireAdmin := middleware.RequireAdmin()

	// Public pages.
	s.E.GET("/", s.pageHandler.HomeGet)
	s.E.GET("/about", s.pageHandler.AboutGet)
	s.E.GET("/pricing", s.pageHandler.PricingGet)
	s.E.GET("/contact-us", s.pageHandler.ContactGet)

	// Authentication.
	s.E.GET("/login", s.authHandler.LoginGet)
	s.E.POST("/login", s.authHandler.LoginPost, rateLimiter)
	s.E.GET("/logout", s.authHandler.Logout)

	// Signup wizard.
	s.E.GET("/signup", s.signupHandler.SignupGet)
	s.E.GET("/signup/:step", s.signupHandler.StepGet)
	s.E.POST("/signup/1", s.signupHandler.PersonalPost)
	s.E.POST("/signup/2", s.signupHandler.AccountPost)
	s.E.POST("/signup/3", s.signupHandler.ProfilePost)
	s.E.POST("/signup/4", s.signupHandler.PhotoPost, rateLimiter)

	// Member area.
	s.E.GET("/search", s.searchHandler.SearchGet, requireUser)
	s.E.GET("/search/ws", s.searchHandler.SearchWS, requireUser)
	s.E.GET("/profile", s.profileHandler.MyProfileGet, requireUser)
	s.E.POST("/profile", s.profileHandler.UpdatePost, requireUser)
	s.E.POST("/profile/photo", s.profileHandler.PhotoPost, requireUser)
	s.E.GET("/profiles/:id", s.profileHandler.DetailGet, requireUser)

	// Profile photos, served through the local cache. Guarded like the
	// pages that embed them.
	s.E.GET("/media/*", s.mediaHandler.Serve, requireUser)

	// Admin area.
	s.E.GET("/admin/login", s.adminHandler.LoginGet)
	s.E.POST("/admin/login", s.adminHandler.LoginPost, rateLimiter)
	s.E.POST("/admin/logout", s.adminHandler.LogoutPost)
	s.E.GET("/admin", s.adminHandler.DashboardGet, requireAdmin)
	s.E.GET("/admin/users/new", s.adminHandler.NewUserGet, requireAdmin)
	s.E.POST("/admin/users/new", s.adminHandler.NewUserPost, requireAdmin)
	s.E.GET("/admin/users/:id", s.adminHandler.UserGet, requireAdmin)
	s.E.POST("/admin/users/:id/delete", s.adminHandler.DeletePost, requireAdmin)
	s.E.POST("/admin/users/:id/photo", s.adminHandler.PhotoPost, requireAdmin)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
