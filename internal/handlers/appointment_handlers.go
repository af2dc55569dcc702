package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"techconsult-api/internal/models"
	"techconsult-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AppointmentHandlers serves the /api/manage-appointments endpoints:
// public booking plus the admin list/inspect/cancel surface.
type AppointmentHandlers struct {
	appointmentService services.AppointmentService
	log                *logrus.Logger
}

func NewAppointmentHandlers(appointmentService services.AppointmentService, log *logrus.Logger) *AppointmentHandlers {
	return &AppointmentHandlers{
		appointmentService: appointmentService,
		log:                log,
	}
}

// Create handles POST /api/manage-appointments.
func (h *AppointmentHandlers) Create(c echo.Context) error {
	var req services.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c)
	}

	appointment, err := h.appointmentService.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/manage-appointments/%d", appointment.ID))
	return c.JSON(http.StatusCreated, appointment.View())
}

// List handles GET /api/manage-appointments, ascending by scheduled
// time.
func (h *AppointmentHandlers) List(c echo.Context) error {
	appointments, err := h.appointmentService.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}

	views := make([]models.AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		views = append(views, appointment.View())
	}
	return c.JSON(http.StatusOK, views)
}

// GetByID handles GET /api/manage-appointments/:id.
func (h *AppointmentHandlers) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	appointment, err := h.appointmentService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, appointment.View())
}

// Delete handles DELETE /api/manage-appointments/:id. Cancelling is
// terminal; the row is gone afterwards.
func (h *AppointmentHandlers) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	if err := h.appointmentService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.NoContent(http.StatusNoContent)
}
