package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

// DayGroup rassemble les réservations d'une même date calendaire locale.
type DayGroup struct {
	Date         time.Time            `json:"date"`
	Label        string               `json:"label"`
	Reservations []models.Reservation `json:"reservations"`
}

var frenchWeekdays = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchShortMonths = [12]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// DayLabel dérive l'étiquette d'un groupe : "Aujourd'hui", "Demain", sinon
// la date longue en français. Fonction totale, pas de cas d'erreur.
func DayLabel(date time.Time, now time.Time, loc *time.Location) string {
	day := localDate(date, loc)
	today := localDate(now, loc)

	switch {
	case day.Equal(today):
		return "Aujourd'hui"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Demain"
	}

	return fmt.Sprintf("%s %d %s %d",
		frenchWeekdays[day.Weekday()],
		day.Day(),
		frenchMonths[day.Month()-1],
		day.Year(),
	)
}

// ShortDayLabel formate une date pour l'axe du graphique ("15 mars").
func ShortDayLabel(date time.Time, loc *time.Location) string {
	day := localDate(date, loc)
	return fmt.Sprintf("%d %s", day.Day(), frenchShortMonths[day.Month()-1])
}

// GroupByDay bucketise par date calendaire locale, groupes triés par date
// croissante. Les réservations sans créneau sont écartées ; l'ordre interne
// d'un groupe préserve l'ordre d'entrée.
func GroupByDay(
	reservations []models.Reservation,
	now time.Time,
	loc *time.Location,
) []DayGroup {

	index := make(map[time.Time]int)
	groups := make([]DayGroup, 0)

	for _, r := range scheduled(reservations) {
		day := localDate(*r.ScheduledAt, loc)

		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{
				Date:  day,
				Label: DayLabel(day, now, loc),
			})
		}
		groups[i].Reservations = append(groups[i].Reservations, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})

	return groups
}
