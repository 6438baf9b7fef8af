package model

import "time"

// LoanPeriod is the default gap between loan date and due date.
const LoanPeriod = 7 * 24 * time.Hour

// Borrowing links one user to one book. A user holds at most one active
// (unreturned) borrowing per book at any time.
type Borrowing struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	LoanDate  time.Time `json:"tanggal_pinjam" gorm:"not null"`
	DueDate   time.Time `json:"tanggal_kembali" gorm:"not null"`
	Returned  bool      `json:"is_returned" gorm:"default:false;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	BookID    uint      `json:"book_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
	Book Book `json:"-" gorm:"foreignKey:BookID"`
}
