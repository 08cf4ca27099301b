package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Vibe-Web-Agency/dashboard/internal/audit"
	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
	"github.com/Vibe-Web-Agency/dashboard/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	OwnerID uuid.UUID

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	// Date "2006-01-02" + Time "15:04", vides = sans créneau
	Date    string
	Time    string
	Message string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	owner, err := uc.repo.GetOwnerByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	var scheduledAt *time.Time
	if in.Date != "" {
		hm := in.Time
		if hm == "" {
			hm = "00:00"
		}

		at, err := time.ParseInLocation(
			"2006-01-02 15:04",
			in.Date+" "+hm,
			timezone.Location(owner.Timezone),
		)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		scheduledAt = &at
	}

	res := models.Reservation{
		UserID:        owner.ID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		ScheduledAt:   scheduledAt,
		Message:       in.Message,
		Attendance:    string(domain.InitialAttendance()),
	}

	if err := domain.ValidateNew(&res); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateReservation(ctx, &res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  owner.ID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return &res, nil
}
