package services

import (
	"context"
	"time"

	"techconsult-api/internal/common"
	"techconsult-api/internal/models"
	"techconsult-api/internal/repositories"
)

// CreateAppointmentRequest is the booking payload. Type is optional and
// defaults to AiConsulting; Notes may be omitted entirely.
type CreateAppointmentRequest struct {
	Title             string                 `json:"title"`
	ScheduledAt       time.Time              `json:"scheduledAt"`
	CallerFirstName   string                 `json:"callerFirstName"`
	CallerLastName    string                 `json:"callerLastName"`
	Type              models.AppointmentType `json:"type"`
	ContactEmail      string                 `json:"contactEmail"`
	Notes             *string                `json:"notes"`
	DurationInMinutes int                    `json:"durationInMinutes"`
}

type AppointmentService interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error)
	GetByID(ctx context.Context, id int) (*models.Appointment, error)
	List(ctx context.Context) ([]*models.Appointment, error)
	Delete(ctx context.Context, id int) error
}

type appointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	now             func() time.Time
}

func NewAppointmentService(appointmentRepo repositories.AppointmentRepository) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		now:             time.Now,
	}
}

func (s *appointmentService) validateCreate(req CreateAppointmentRequest) error {
	ve := common.NewValidationError()

	common.RequireString(ve, "title", req.Title, common.MaxTitleLength)
	common.RequireString(ve, "callerFirstName", req.CallerFirstName, common.MaxCallerNameLength)
	common.RequireString(ve, "callerLastName", req.CallerLastName, common.MaxCallerNameLength)
	common.RequireEmail(ve, "contactEmail", req.ContactEmail)
	common.OptionalString(ve, "notes", req.Notes, common.MaxNotesLength)
	common.IntRange(ve, "durationInMinutes", req.DurationInMinutes, 0, common.MaxDurationMinutes)

	if !req.Type.Valid() {
		ve.Add("type", "The type field is invalid.")
	}

	if req.ScheduledAt.IsZero() {
		ve.Add("scheduledAt", "The scheduledAt field is required.")
	} else if !req.ScheduledAt.After(s.now()) {
		// Strict inequality: a request landing exactly on "now" is
		// rejected.
		ve.Add("scheduledAt", "Scheduled time must be in the future.")
	}

	return ve.ErrOrNil()
}

// Create validates and persists a booking, returning the stored row with
// its generated id and created_at.
func (s *appointmentService) Create(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		Title:             req.Title,
		ScheduledAt:       req.ScheduledAt,
		DurationInMinutes: req.DurationInMinutes,
		CallerFirstName:   req.CallerFirstName,
		CallerLastName:    req.CallerLastName,
		Type:              req.Type,
		ContactEmail:      req.ContactEmail,
		Notes:             req.Notes,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id int) (*models.Appointment, error) {
	return s.appointmentRepo.GetByID(ctx, id)
}

func (s *appointmentService) List(ctx context.Context) ([]*models.Appointment, error) {
	return s.appointmentRepo.List(ctx)
}

func (s *appointmentService) Delete(ctx context.Context, id int) error {
	return s.appointmentRepo.Delete(ctx, id)
}
