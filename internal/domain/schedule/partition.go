package schedule

import (
	"github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

// PartitionByAttendance sépare les réservations résolues en présents et
// absents d'après le statut de présence explicite. Les non résolues ne
// figurent dans aucune des deux listes.
func PartitionByAttendance(
	reservations []models.Reservation,
) (attended []models.Reservation, missed []models.Reservation) {

	attended = make([]models.Reservation, 0, len(reservations))
	missed = make([]models.Reservation, 0)

	for _, r := range reservations {
		switch reservation.Attendance(r.Attendance) {
		case reservation.AttendanceAttended:
			attended = append(attended, r)
		case reservation.AttendanceMissed:
			missed = append(missed, r)
		}
	}

	return attended, missed
}
