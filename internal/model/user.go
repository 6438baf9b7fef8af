package model

import "time"

// Role values accepted at registration.
const (
	RoleUser    = "user"
	RolePetugas = "petugas"
)

// User represents a registered library member or staff account.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"nama" gorm:"size:255;not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password   string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized
	Role       string    `json:"role" gorm:"size:50;default:'user'"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Profile    *Profile    `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Borrowings []Borrowing `json:"borrowings,omitempty" gorm:"foreignKey:UserID"`
}

// UserSummary is the denormalized user shape embedded in borrowing responses.
type UserSummary struct {
	Name  string `json:"nama"`
	Email string `json:"email"`
}

// Summary returns the user's borrowing-response projection.
func (u *User) Summary() UserSummary {
	return UserSummary{Name: u.Name, Email: u.Email}
}
