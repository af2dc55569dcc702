package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// AppointmentType is stored as an integer code with a fixed assignment.
// The zero value is AiConsulting, which doubles as the default when a
// booking request omits the type.
type AppointmentType int

const (
	TypeAiConsulting    AppointmentType = 0
	TypeWebDevelopment  AppointmentType = 1
	TypeSaasDevelopment AppointmentType = 2
)

var appointmentTypeNames = map[AppointmentType]string{
	TypeAiConsulting:    "AiConsulting",
	TypeWebDevelopment:  "WebDevelopment",
	TypeSaasDevelopment: "SaasDevelopment",
}

// ParseAppointmentType maps a type name to its code.
func ParseAppointmentType(s string) (AppointmentType, error) {
	for code, name := range appointmentTypeNames {
		if name == s {
			return code, nil
		}
	}
	return 0, fmt.Errorf("unknown appointment type %q", s)
}

func (t AppointmentType) Valid() bool {
	_, ok := appointmentTypeNames[t]
	return ok
}

func (t AppointmentType) String() string {
	if name, ok := appointmentTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AppointmentType(%d)", int(t))
}

func (t AppointmentType) MarshalJSON() ([]byte, error) {
	name, ok := appointmentTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("cannot serialize unknown appointment type code %d", int(t))
	}
	return json.Marshal(name)
}

func (t *AppointmentType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("type must be a string")
	}
	parsed, err := ParseAppointmentType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Appointment is a booking row. Once created it is only ever read or
// deleted; there is no update path.
type Appointment struct {
	ID                int
	Title             string
	ScheduledAt       time.Time
	DurationInMinutes int
	CallerFirstName   string
	CallerLastName    string
	Type              AppointmentType
	ContactEmail      string
	Notes             *string
	CreatedAt         time.Time
}

// AppointmentView is the representation returned to clients. CreatedAt
// is persisted but not part of the public view.
type AppointmentView struct {
	ID                int             `json:"id"`
	Title             string          `json:"title"`
	ScheduledAt       time.Time       `json:"scheduledAt"`
	CallerFirstName   string          `json:"callerFirstName"`
	CallerLastName    string          `json:"callerLastName"`
	Type              AppointmentType `json:"type"`
	ContactEmail      string          `json:"contactEmail"`
	Notes             *string         `json:"notes"`
	DurationInMinutes int             `json:"durationInMinutes"`
}

func (a *Appointment) View() AppointmentView {
	return AppointmentView{
		ID:                a.ID,
		Title:             a.Title,
		ScheduledAt:       a.ScheduledAt,
		CallerFirstName:   a.CallerFirstName,
		CallerLastName:    a.CallerLastName,
		Type:              a.Type,
		ContactEmail:      a.ContactEmail,
		Notes:             a.Notes,
		DurationInMinutes: a.DurationInMinutes,
	}
}
