package model

import "time"

// Статусы записи на примерку
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Date      time.Time         `json:"date"`
	Status    AppointmentStatus `json:"status"`
	Notes     *string           `json:"notes,omitempty"`
	Code      string            `json:"code"` // Код подтверждения для клиента
	CreatedAt time.Time         `json:"created_at"`
}
