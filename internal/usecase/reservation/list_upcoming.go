package reservation

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/domain/schedule"
	"github.com/Vibe-Web-Agency/dashboard/internal/dto"
	"github.com/Vibe-Web-Agency/dashboard/internal/timezone"
)

type ListUpcoming struct {
	repo domain.Repository
}

func NewListUpcoming(
	repo domain.Repository,
) *ListUpcoming {
	return &ListUpcoming{
		repo: repo,
	}
}

// Execute renvoie les réservations non résolues, groupées par date
// calendaire locale avec étiquette ("Aujourd'hui" / "Demain" / date longue).
func (uc *ListUpcoming) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]dto.DayGroupDTO, error) {

	owner, err := uc.repo.GetOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(owner.Timezone)

	reservations, err := uc.repo.ListUnresolvedReservations(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	groups := schedule.GroupByDay(reservations, timezone.NowIn(owner.Timezone), loc)

	out := make([]dto.DayGroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.DayGroupDTO{
			Date:         g.Date,
			Label:        g.Label,
			Count:        len(g.Reservations),
			Reservations: dto.FromReservations(g.Reservations),
		})
	}

	return out, nil
}
