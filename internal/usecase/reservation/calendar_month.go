package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/domain/schedule"
	"github.com/Vibe-Web-Agency/dashboard/internal/dto"
	"github.com/Vibe-Web-Agency/dashboard/internal/timezone"
)

type CalendarMonth struct {
	repo domain.Repository
}

func NewCalendarMonth(
	repo domain.Repository,
) *CalendarMonth {
	return &CalendarMonth{
		repo: repo,
	}
}

// Execute construit la grille mensuelle du propriétaire : uniquement les
// réservations du mois demandé, cellules vides de remplissage incluses.
func (uc *CalendarMonth) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	year int,
	month int,
) ([]dto.DayCellDTO, error) {

	owner, err := uc.repo.GetOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(owner.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	reservations, err := uc.repo.ListReservationsForPeriod(
		ctx,
		ownerID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	cells := schedule.MonthGrid(
		year,
		time.Month(month),
		loc,
		reservations,
		timezone.NowIn(owner.Timezone),
	)

	out := make([]dto.DayCellDTO, 0, len(cells))
	for _, cell := range cells {
		out = append(out, dto.DayCellDTO{
			Empty:        cell.Empty,
			Date:         cell.Date,
			Today:        cell.Today,
			Past:         cell.Past,
			Count:        len(cell.Reservations),
			Reservations: dto.FromReservations(cell.Reservations),
		})
	}

	return out, nil
}
