// Package schedule regroupe les réservations déjà chargées en structures
// prêtes pour l'affichage : grille mensuelle, groupes par jour, partitions
// de présence. Fonctions pures, aucune lecture en base.
package schedule

import (
	"time"

	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

// localDate tronque un instant à sa date calendaire dans loc.
func localDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// scheduled écarte les réservations sans créneau : elles n'appartiennent
// à aucune cellule ni à aucun groupe.
func scheduled(reservations []models.Reservation) []models.Reservation {
	out := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.ScheduledAt != nil {
			out = append(out, r)
		}
	}
	return out
}
