package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"perpus/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *model.Profile) error
	FindByUserID(ctx context.Context, userID uint) (*model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"bio", "address", "updated_at"}),
	}).Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
