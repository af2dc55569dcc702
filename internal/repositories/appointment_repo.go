package repositories

import (
	"context"
	"errors"
	"fmt"

	"techconsult-api/internal/common"
	"techconsult-api/internal/models"

	"github.com/jackc/pgx/v5"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id int) (*models.Appointment, error)
	List(ctx context.Context) ([]*models.Appointment, error)
	Delete(ctx context.Context, id int) error
}

type appointmentRepo struct {
	db DB
}

func NewAppointmentRepo(db DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

// Create inserts the booking and fills in the generated id and
// created_at.
func (r *appointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	query := `
		INSERT INTO appointments
			(title, scheduled_at, duration_in_minutes, caller_first_name, caller_last_name, appointment_type, contact_email, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		appointment.Title,
		appointment.ScheduledAt,
		appointment.DurationInMinutes,
		appointment.CallerFirstName,
		appointment.CallerLastName,
		int(appointment.Type),
		appointment.ContactEmail,
		appointment.Notes,
	).Scan(&appointment.ID, &appointment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int) (*models.Appointment, error) {
	appointment := &models.Appointment{}
	query := `
		SELECT id, title, scheduled_at, duration_in_minutes, caller_first_name, caller_last_name, appointment_type, contact_email, notes, created_at
		FROM appointments
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.Title,
		&appointment.ScheduledAt,
		&appointment.DurationInMinutes,
		&appointment.CallerFirstName,
		&appointment.CallerLastName,
		&appointment.Type,
		&appointment.ContactEmail,
		&appointment.Notes,
		&appointment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("select appointment by id: %w", err)
	}
	return appointment, nil
}

// List returns every appointment ascending by scheduled time. Ties fall
// back to insertion order via the id.
func (r *appointmentRepo) List(ctx context.Context) ([]*models.Appointment, error) {
	query := `
		SELECT id, title, scheduled_at, duration_in_minutes, caller_first_name, caller_last_name, appointment_type, contact_email, notes, created_at
		FROM appointments
		ORDER BY scheduled_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var out []*models.Appointment
	for rows.Next() {
		appointment := &models.Appointment{}
		if err := rows.Scan(
			&appointment.ID,
			&appointment.Title,
			&appointment.ScheduledAt,
			&appointment.DurationInMinutes,
			&appointment.CallerFirstName,
			&appointment.CallerLastName,
			&appointment.Type,
			&appointment.ContactEmail,
			&appointment.Notes,
			&appointment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return out, nil
}

// Delete removes the row. common.ErrNotFound distinguishes "nothing to
// delete" from an actual removal.
func (r *appointmentRepo) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM appointments WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
