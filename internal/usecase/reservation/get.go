package reservation

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(
	repo domain.Repository,
) *GetReservation {
	return &GetReservation{
		repo: repo,
	}
}

// Un id supprimé ou appartenant à un autre compte donne le même not-found.
func (uc *GetReservation) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	reservationID uuid.UUID,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationForOwner(ctx, reservationID, ownerID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	return res, nil
}
