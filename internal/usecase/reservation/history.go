package reservation

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/domain/schedule"
	"github.com/Vibe-Web-Agency/dashboard/internal/dto"
)

type History struct {
	repo domain.Repository
}

func NewHistory(
	repo domain.Repository,
) *History {
	return &History{
		repo: repo,
	}
}

// Execute renvoie les réservations résolues partitionnées présents/absents,
// triées du plus récent au plus ancien, avec les compteurs des deux listes.
func (uc *History) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
) (*dto.HistoryDTO, error) {

	reservations, err := uc.repo.ListResolvedReservations(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	attended, missed := schedule.PartitionByAttendance(reservations)

	return &dto.HistoryDTO{
		AttendedCount: len(attended),
		MissedCount:   len(missed),
		Attended:      dto.FromReservations(attended),
		Missed:        dto.FromReservations(missed),
	}, nil
}
