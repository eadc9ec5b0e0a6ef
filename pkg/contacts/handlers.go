package contacts

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/nameparser/pkg/models"
	"github.com/shishobooks/nameparser/pkg/names"
)

type handler struct {
	contactService *Service
	maxNameLength  int
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateContactPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}
	if err := names.ValidateLength(params.FullName, h.maxNameLength); err != nil {
		return err
	}

	contact, err := h.contactService.CreateContact(ctx, params.FullName)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.FromContext(ctx).Info("contact created", logger.Data{"contact_id": contact.ID})

	return errors.WithStack(c.JSON(http.StatusCreated, contact))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListContactsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	contacts, total, err := h.contactService.ListContactsWithTotal(ctx, ListContactsOptions{
		Limit:  &params.Limit,
		Offset: &params.Offset,
		Search: params.Search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]interface{}{
		"contacts": contacts,
		"total":    total,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	contact, err := h.contactService.RetrieveContact(ctx, RetrieveContactOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, contact))
}

func (h *handler) reparse(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	contact, err := h.contactService.RetrieveContact(ctx, RetrieveContactOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	changed, err := h.contactService.ReparseContact(ctx, contact)
	if err != nil {
		return errors.WithStack(err)
	}

	response := struct {
		*models.Contact
		Changed bool `json:"changed"`
	}{contact, changed}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.contactService.DeleteContact(ctx, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.NoContent(http.StatusNoContent))
}
