package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Owner
// --------------------------------------------------

func (r *ReservationGormRepository) GetOwnerByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Reservation (create / mutate)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) GetReservationForOwner(
	ctx context.Context,
	reservationID uuid.UUID,
	ownerID uuid.UUID,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", reservationID, ownerID).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Delete(res).Error
}

// --------------------------------------------------
// Reservation (listings)
// --------------------------------------------------

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("scheduled_at ASC NULLS LAST").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ReservationGormRepository) ListUnresolvedReservations(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND attendance = ?",
			ownerID, string(domain.AttendanceUnresolved),
		).
		Order("scheduled_at ASC NULLS LAST").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ReservationGormRepository) ListResolvedReservations(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND attendance <> ?",
			ownerID, string(domain.AttendanceUnresolved),
		).
		Order("scheduled_at DESC NULLS LAST").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ReservationGormRepository) ListReservationsForPeriod(
	ctx context.Context,
	ownerID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
			ownerID, start, end,
		).
		Order("scheduled_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
