package model

import "time"

// Profile holds optional member details, one row per user.
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Bio       string    `json:"bio" gorm:"type:text"`
	Address   string    `json:"alamat" gorm:"type:text"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
