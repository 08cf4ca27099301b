package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vibe-Web-Agency/dashboard/internal/audit"
	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

// Suppression définitive, pas de corbeille.
func (uc *DeleteReservation) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	reservationID uuid.UUID,
) error {

	res, err := uc.repo.GetReservationForOwner(ctx, reservationID, ownerID)
	if err != nil {
		return httperr.ErrBusiness("reservation_not_found")
	}

	if err := uc.repo.DeleteReservation(ctx, res); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return nil
}
