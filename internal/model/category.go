package model

import "time"

// Category groups books. Deleting a category that still owns books fails at
// the database layer: the foreign key carries no cascade.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nama" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Books []Book `json:"books,omitempty" gorm:"foreignKey:CategoryID"`
}
