package contacts

import (
	"github.com/labstack/echo/v4"
	"github.com/shishobooks/nameparser/pkg/config"
	"github.com/uptrace/bun"
)

func RegisterRoutes(e *echo.Echo, db *bun.DB, cfg *config.Config) {
	contactService := NewService(db, cfg.DatabaseMaxRetries)

	h := &handler{
		contactService: contactService,
		maxNameLength:  cfg.MaxNameLength,
	}

	g := e.Group("/contacts")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.retrieve)
	g.POST("/:id/reparse", h.reparse)
	g.DELETE("/:id", h.delete)
}
