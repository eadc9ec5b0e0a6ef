package names

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/nameparser/pkg/errcodes"
	"github.com/shishobooks/nameparser/pkg/nameparser"
)

type handler struct {
	batchMaxNames int
	maxNameLength int
}

func (h *handler) parse(c echo.Context) error {
	params := ParsePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := ParseName(params.Name, h.maxNameLength)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, result))
}

func (h *handler) parseBatch(c echo.Context) error {
	ctx := c.Request().Context()

	params := ParseBatchPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}
	if len(params.Names) > h.batchMaxNames {
		return errcodes.TooManyNames(h.batchMaxNames)
	}

	results := make([]BatchResult, len(params.Names))
	failed := 0
	for i, name := range params.Names {
		results[i].Input = name

		result, err := ParseName(name, h.maxNameLength)
		if err != nil {
			var e *errcodes.Error
			if !errors.As(err, &e) {
				return errors.WithStack(err)
			}
			results[i].Error = &BatchError{e.Code, e.Message}
			failed++
			continue
		}
		results[i].Name = &result.ParsedName
		results[i].SortName = result.SortName
	}

	logger.FromContext(ctx).Info("parsed name batch", logger.Data{
		"batch_id": uuid.New().String(),
		"total":    len(results),
		"failed":   failed,
	})

	response := map[string]interface{}{
		"results": results,
		"total":   len(results),
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) classify(c echo.Context) error {
	params := ClassifyQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, nameparser.Classify(params.Word)))
}

func (h *handler) suffixes(c echo.Context) error {
	response := map[string]interface{}{
		"suffixes": nameparser.Suffixes(),
	}
	return errors.WithStack(c.JSON(http.StatusOK, response))
}
