package schedule

import (
	"time"

	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

// DayCell est une case de la grille mensuelle. Les cases vides (avant le 1er
// du mois, après le dernier jour) n'ont pas de date.
type DayCell struct {
	Empty bool       `json:"empty"`
	Date  *time.Time `json:"date,omitempty"`

	Today bool `json:"today"`
	Past  bool `json:"past"`

	Reservations []models.Reservation `json:"reservations"`
}

// MonthGrid construit la grille du mois : semaine commençant le lundi,
// cases de remplissage en tête et en queue pour que la longueur soit
// toujours un multiple de 7. Une réservation appartient à la case dont la
// date calendaire locale égale celle de son créneau ; l'ordre intra-case
// suit l'ordre d'entrée (le fetch est trié par créneau croissant).
func MonthGrid(
	year int,
	month time.Month,
	loc *time.Location,
	reservations []models.Reservation,
	now time.Time,
) []DayCell {

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Weekday() compte depuis dimanche, la grille depuis lundi
	leading := (int(first.Weekday()) + 6) % 7

	byDay := make(map[int][]models.Reservation)
	for _, r := range scheduled(reservations) {
		at := r.ScheduledAt.In(loc)
		if at.Year() == year && at.Month() == month {
			byDay[at.Day()] = append(byDay[at.Day()], r)
		}
	}

	today := localDate(now, loc)

	cells := make([]DayCell, 0, leading+daysInMonth+6)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{Empty: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		cells = append(cells, DayCell{
			Date:         &date,
			Today:        date.Equal(today),
			Past:         date.Before(today),
			Reservations: byDay[day],
		})
	}

	for len(cells)%7 != 0 {
		cells = append(cells, DayCell{Empty: true})
	}

	return cells
}
