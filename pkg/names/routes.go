package names

import (
	"github.com/labstack/echo/v4"
	"github.com/shishobooks/nameparser/pkg/config"
)

func RegisterRoutes(e *echo.Echo, cfg *config.Config) {
	h := &handler{
		batchMaxNames: cfg.BatchMaxNames,
		maxNameLength: cfg.MaxNameLength,
	}

	g := e.Group("/names")
	g.GET("/parse", h.parse)
	g.POST("/parse", h.parse)
	g.POST("/parse/batch", h.parseBatch)
	g.GET("/classify", h.classify)
	g.GET("/suffixes", h.suffixes)
}
