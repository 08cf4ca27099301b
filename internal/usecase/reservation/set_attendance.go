package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vibe-Web-Agency/dashboard/internal/audit"
	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

type SetAttendance struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetAttendance(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetAttendance {
	return &SetAttendance{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetAttendance) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	reservationID uuid.UUID,
	raw string,
) (*models.Reservation, error) {

	attendance, err := domain.ParseAttendance(raw)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.GetReservationForOwner(ctx, reservationID, ownerID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.SetAttendance(res, attendance); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "reservation_attendance_set",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{"attendance": string(attendance)},
	})

	return res, nil
}
