package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

type ReservationListDTO struct {
	ID            uuid.UUID  `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail string     `json:"customer_email"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	Message       string     `json:"message"`
	Attendance    string     `json:"attendance"`
}

func FromReservation(r models.Reservation) ReservationListDTO {
	return ReservationListDTO{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		ScheduledAt:   r.ScheduledAt,
		Message:       r.Message,
		Attendance:    r.Attendance,
	}
}

func FromReservations(rs []models.Reservation) []ReservationListDTO {
	out := make([]ReservationListDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReservation(r))
	}
	return out
}

type DayGroupDTO struct {
	Date         time.Time            `json:"date"`
	Label        string               `json:"label"`
	Count        int                  `json:"count"`
	Reservations []ReservationListDTO `json:"reservations"`
}

type DayCellDTO struct {
	Empty        bool                 `json:"empty"`
	Date         *time.Time           `json:"date,omitempty"`
	Today        bool                 `json:"today"`
	Past         bool                 `json:"past"`
	Count        int                  `json:"count"`
	Reservations []ReservationListDTO `json:"reservations"`
}

type HistoryDTO struct {
	AttendedCount int                  `json:"attended_count"`
	MissedCount   int                  `json:"missed_count"`
	Attended      []ReservationListDTO `json:"attended"`
	Missed        []ReservationListDTO `json:"missed"`
}
