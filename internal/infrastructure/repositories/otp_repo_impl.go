package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"enrols.backend/internal/domain/entities"
	"enrols.backend/internal/infrastructure/models"
)

// OtpRepository records issued one-time codes
type OtpRepository struct {
	db *gorm.DB
}

// NewOtpRepository creates a new otp repository
func NewOtpRepository(db *gorm.DB) *OtpRepository {
	return &OtpRepository{db: db}
}

// Create records an issued code
func (r *OtpRepository) Create(ctx context.Context, record *entities.OtpRecord) error {
	m := &models.Otp{
		ID:          record.ID,
		PhoneNumber: record.PhoneNumber,
		Code:        record.Code,
		CreatedAt:   record.CreatedAt,
		ExpiresAt:   record.ExpiresAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// DeleteExpired removes up to limit expired rows and reports how many
// went away.
func (r *OtpRepository) DeleteExpired(ctx context.Context, limit int) (int64, error) {
	sub := r.db.WithContext(ctx).Model(&models.Otp{}).
		Select("id").
		Where("expires_at < ?", time.Now()).
		Limit(limit)

	result := r.db.WithContext(ctx).Where("id IN (?)", sub).Delete(&models.Otp{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
