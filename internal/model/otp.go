package model

import "time"

// Otp stores the active verification code for an unverified user. A resend
// overwrites the row rather than appending a second code.
type Otp struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Code      int       `json:"otp" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
