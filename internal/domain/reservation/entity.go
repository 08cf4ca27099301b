package reservation

import (
	"strings"

	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetAttendance enregistre le statut de présence. Tout statut est
// atteignable depuis tout autre ; re-poser la même valeur est idempotent.
func SetAttendance(r *models.Reservation, a Attendance) error {
	if !a.IsValid() {
		return httperr.ErrBusiness("invalid_attendance")
	}

	r.Attendance = string(a)
	return nil
}

// ValidateNew contrôle une réservation avant insertion.
func ValidateNew(r *models.Reservation) error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return httperr.ErrBusiness("missing_customer_name")
	}

	if r.Attendance == "" {
		r.Attendance = string(InitialAttendance())
	}
	if !Attendance(r.Attendance).IsValid() {
		return httperr.ErrBusiness("invalid_attendance")
	}

	return nil
}
