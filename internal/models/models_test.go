package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppUserRoleCodesAreFixed(t *testing.T) {
	// These codes are persisted; renumbering them would corrupt
	// existing rows.
	assert.Equal(t, 1, int(RoleAdmin))
	assert.Equal(t, 2, int(RoleRegularUser))
}

func TestAppointmentTypeCodesAreFixed(t *testing.T) {
	assert.Equal(t, 0, int(TypeAiConsulting))
	assert.Equal(t, 1, int(TypeWebDevelopment))
	assert.Equal(t, 2, int(TypeSaasDevelopment))
}

func TestAppUserRoleJSONUsesNames(t *testing.T) {
	data, err := json.Marshal(RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, `"Admin"`, string(data))

	var role AppUserRole
	require.NoError(t, json.Unmarshal([]byte(`"RegularUser"`), &role))
	assert.Equal(t, RoleRegularUser, role)
}

func TestAppUserRoleRejectsUnknownName(t *testing.T) {
	var role AppUserRole
	err := json.Unmarshal([]byte(`"SuperAdmin"`), &role)
	assert.Error(t, err)
}

func TestAppointmentTypeRejectsNonString(t *testing.T) {
	var typ AppointmentType
	assert.Error(t, json.Unmarshal([]byte(`1`), &typ))
}

func TestParseAppointmentType(t *testing.T) {
	typ, err := ParseAppointmentType("SaasDevelopment")
	require.NoError(t, err)
	assert.Equal(t, TypeSaasDevelopment, typ)

	_, err = ParseAppointmentType("Consulting")
	assert.Error(t, err)
}

func TestAppUserViewNeverExposesPasswordHash(t *testing.T) {
	user := &AppUser{
		ID:           7,
		Email:        "max@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         RoleAdmin,
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(user.View())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.NotContains(t, string(data), "secret")
	assert.Equal(t, map[string]any{
		"id":          float64(7),
		"email":       "max@example.com",
		"role":        "Admin",
		"createdAt":   "2026-01-02T03:04:05Z",
		"lastLoginAt": nil,
	}, decoded)
}

func TestAppointmentViewShape(t *testing.T) {
	notes := "prefers mornings"
	appointment := &Appointment{
		ID:                3,
		Title:             "AI Consulting",
		ScheduledAt:       time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		DurationInMinutes: 60,
		CallerFirstName:   "Max",
		CallerLastName:    "Mustermann",
		Type:              TypeAiConsulting,
		ContactEmail:      "max@example.com",
		Notes:             &notes,
		CreatedAt:         time.Now(),
	}

	data, err := json.Marshal(appointment.View())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "AiConsulting", decoded["type"])
	assert.Equal(t, "prefers mornings", decoded["notes"])
	// created_at is persisted but not part of the public view.
	assert.NotContains(t, decoded, "createdAt")
}
