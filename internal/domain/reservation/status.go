package reservation

import "github.com/Vibe-Web-Agency/dashboard/internal/httperr"

// ===============================
// Attendance Status
// ===============================

// Attendance est le cycle de vie d'une réservation : créée non résolue,
// l'opérateur enregistre ensuite présent ou absent. Aucun état n'est
// terminal, l'opérateur peut corriger librement.
type Attendance string

const (
	AttendanceUnresolved Attendance = "unresolved"
	AttendanceAttended   Attendance = "attended"
	AttendanceMissed     Attendance = "missed"
)

// ===============================
// Validations
// ===============================

func (a Attendance) IsValid() bool {
	switch a {
	case AttendanceUnresolved, AttendanceAttended, AttendanceMissed:
		return true
	}
	return false
}

func ParseAttendance(raw string) (Attendance, error) {
	a := Attendance(raw)
	if !a.IsValid() {
		return "", httperr.ErrBusiness("invalid_attendance")
	}
	return a, nil
}

func InitialAttendance() Attendance {
	return AttendanceUnresolved
}
