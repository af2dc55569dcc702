package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"techconsult-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AuthHandlers serves the /api/auth endpoints.
type AuthHandlers struct {
	authService services.AuthService
	log         *logrus.Logger
}

func NewAuthHandlers(authService services.AuthService, log *logrus.Logger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		log:         log,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandlers) Register(c echo.Context) error {
	var req services.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c)
	}

	user, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/auth/%d", user.ID))
	return c.JSON(http.StatusCreated, user.View())
}

// Login handles POST /api/auth/login.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req services.LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c)
	}

	user, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, user.View())
}

// GetByID handles GET /api/auth/:id. A non-integer id is a 404, same as
// an unknown one.
func (h *AuthHandlers) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	user, err := h.authService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, user.View())
}
