package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/quote"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

type QuoteGormRepository struct {
	db *gorm.DB
}

func NewQuoteGormRepository(db *gorm.DB) *QuoteGormRepository {
	return &QuoteGormRepository{db: db}
}

func (r *QuoteGormRepository) RecentForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	limit int,
) ([]models.Quote, error) {

	var out []models.Quote
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

func (r *QuoteGormRepository) CountPendingForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Quote{}).
		Where("user_id = ? AND status = ?", ownerID, string(domain.StatusPending)).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
