package handler

import (
	domainerrors "fittrack/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a path parameter as a UUID. A malformed value is a
// validation failure, rendered by the error middleware as a 400.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}
