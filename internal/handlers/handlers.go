package handlers

import (
	"errors"
	"net/http"

	"techconsult-api/internal/common"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// respondBindError is the 400 body for requests whose JSON could not be
// deserialized (malformed body, unknown enum name). It uses the same
// problem shape as field validation, keyed on the body root.
func respondBindError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, common.NewValidationProblem(map[string][]string{
		"$": {"The request body could not be parsed."},
	}))
}

// respondError translates a domain error into the HTTP contract. Storage
// errors are logged and surfaced as a generic failure; their text never
// reaches the client.
func respondError(c echo.Context, log *logrus.Logger, err error) error {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, common.NewValidationProblem(ve.Fields))
	}

	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return c.JSON(http.StatusBadRequest, common.NewValidationProblem(map[string][]string{
			"email": {"A user with this email already exists."},
		}))
	case errors.Is(err, common.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, common.MessageResponse{Message: "Invalid email or password."})
	case errors.Is(err, common.ErrNotFound):
		return c.NoContent(http.StatusNotFound)
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
		}).Error("request failed")
		return c.JSON(http.StatusInternalServerError, common.MessageResponse{Message: "An unexpected error occurred."})
	}
}
