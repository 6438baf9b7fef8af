package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"perpus/internal/model"
)

// OtpRepository defines OTP persistence operations. Each user owns at most
// one code row; issuing a new code replaces the old one.
type OtpRepository interface {
	Upsert(ctx context.Context, otp *model.Otp) error
	FindByUserID(ctx context.Context, userID uint) (*model.Otp, error)
}

type otpRepository struct {
	db *gorm.DB
}

// NewOtpRepository builds a GORM-backed repository.
func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Upsert(ctx context.Context, otp *model.Otp) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "updated_at"}),
	}).Create(otp).Error
}

func (r *otpRepository) FindByUserID(ctx context.Context, userID uint) (*model.Otp, error) {
	var otp model.Otp
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}
