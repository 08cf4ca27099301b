package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

func TestDayLabel(t *testing.T) {
	loc := parisLoc(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, loc)

	cases := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "aujourd'hui",
			date: time.Date(2024, 3, 15, 18, 30, 0, 0, loc),
			want: "Aujourd'hui",
		},
		{
			name: "demain",
			date: time.Date(2024, 3, 16, 8, 0, 0, 0, loc),
			want: "Demain",
		},
		{
			name: "date longue",
			date: time.Date(2024, 3, 18, 10, 0, 0, 0, loc),
			want: "lundi 18 mars 2024",
		},
		{
			name: "hier n'est pas un cas spécial",
			date: time.Date(2024, 3, 14, 10, 0, 0, 0, loc),
			want: "jeudi 14 mars 2024",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DayLabel(tc.date, now, loc))
		})
	}
}

func TestShortDayLabel(t *testing.T) {
	loc := parisLoc(t)

	assert.Equal(t, "15 mars", ShortDayLabel(time.Date(2024, 3, 15, 0, 0, 0, 0, loc), loc))
	assert.Equal(t, "1 janv.", ShortDayLabel(time.Date(2025, 1, 1, 0, 0, 0, 0, loc), loc))
	assert.Equal(t, "31 déc.", ShortDayLabel(time.Date(2024, 12, 31, 0, 0, 0, 0, loc), loc))
}

func TestGroupByDay(t *testing.T) {
	loc := parisLoc(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, loc)

	// Entrée volontairement désordonnée entre jours, ordonnée dans le jour
	input := []models.Reservation{
		reservationAt("Claire", time.Date(2024, 3, 16, 10, 0, 0, 0, loc)),
		reservationAt("Alice", time.Date(2024, 3, 15, 9, 0, 0, 0, loc)),
		reservationAt("Bob", time.Date(2024, 3, 15, 14, 0, 0, 0, loc)),
		{CustomerName: "Sans créneau"},
	}

	groups := GroupByDay(input, now, loc)
	require.Len(t, groups, 2)

	assert.Equal(t, "Aujourd'hui", groups[0].Label)
	require.Len(t, groups[0].Reservations, 2)
	assert.Equal(t, "Alice", groups[0].Reservations[0].CustomerName)
	assert.Equal(t, "Bob", groups[0].Reservations[1].CustomerName)

	assert.Equal(t, "Demain", groups[1].Label)
	require.Len(t, groups[1].Reservations, 1)
	assert.Equal(t, "Claire", groups[1].Reservations[0].CustomerName)

	assert.True(t, groups[0].Date.Before(groups[1].Date))
}

func TestGroupByDay_Empty(t *testing.T) {
	loc := parisLoc(t)
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, loc)

	groups := GroupByDay(nil, now, loc)
	assert.Empty(t, groups)

	groups = GroupByDay([]models.Reservation{{CustomerName: "Sans créneau"}}, now, loc)
	assert.Empty(t, groups)
}
