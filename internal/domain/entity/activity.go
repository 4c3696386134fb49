package entity

import "time"

// Tipos de actividad de un trato.
const (
	ActivityCall    = "llamada"
	ActivityMeeting = "reunion"
	ActivityTask    = "tarea"
)

// Modalidades de reunión.
const (
	MeetingInPerson = "presencial"
	MeetingRemote   = "videollamada"
)

// Activity representa una llamada, reunión o tarea agendada sobre un trato.
// Una actividad sin CompletedAt y con DueAt en el pasado está vencida.
type Activity struct {
	ID          string
	DealID      string
	Kind        string // ver constantes Activity*
	AssigneeID  string
	ContactID   string
	DueAt       *time.Time
	Purpose     string
	DurationMin int    // solo reunión
	Modality    string // solo reunión
	Location    string // lugar, medio o enlace según la modalidad
	TaskType    string // solo tarea
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// IsValidActivityKind informa si el tipo pertenece al catálogo.
func IsValidActivityKind(s string) bool {
	return s == ActivityCall || s == ActivityMeeting || s == ActivityTask
}
