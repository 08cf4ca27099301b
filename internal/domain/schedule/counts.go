package schedule

import (
	"time"

	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

// DayCount est un point du graphique d'activité.
type DayCount struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	Count int       `json:"count"`
}

// CountByDay compte les réservations par jour sur `days` jours à partir de
// `from` (inclus). Même critère d'appartenance que la grille mensuelle.
func CountByDay(
	reservations []models.Reservation,
	from time.Time,
	days int,
	loc *time.Location,
) []DayCount {

	start := localDate(from, loc)

	counts := make(map[time.Time]int)
	for _, r := range scheduled(reservations) {
		counts[localDate(*r.ScheduledAt, loc)]++
	}

	out := make([]DayCount, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		out = append(out, DayCount{
			Date:  day,
			Label: ShortDayLabel(day, loc),
			Count: counts[day],
		})
	}

	return out
}
