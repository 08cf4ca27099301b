package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

// Repository isole l'accès au stockage. Toutes les lectures sont bornées
// au propriétaire : une réservation n'est visible que par son compte.
type Repository interface {
	// -------- Owner --------
	GetOwnerByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	// -------- Reservation (create / mutate) --------
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	GetReservationForOwner(
		ctx context.Context,
		reservationID uuid.UUID,
		ownerID uuid.UUID,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// -------- Reservation (listings) --------
	ListReservations(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Reservation, error)

	ListUnresolvedReservations(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Reservation, error)

	ListResolvedReservations(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Reservation, error)

	ListReservationsForPeriod(
		ctx context.Context,
		ownerID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)
}
