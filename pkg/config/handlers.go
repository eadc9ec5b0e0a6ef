package config

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shishobooks/nameparser/pkg/version"
)

type handler struct {
	config *Config
}

// retrieve returns the limits clients need to respect when calling the name
// endpoints. Database and server settings are never exposed.
func (h *handler) retrieve(c echo.Context) error {
	response := struct {
		*Config
		Version string `json:"version"`
	}{h.config, version.Version}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}
