package model

import "time"

// Book is a catalog entry with a stock counter mutated by the borrowing
// workflow. Stock never goes below zero.
type Book struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"judul" gorm:"size:255;not null"`
	Summary    string    `json:"ringkasan" gorm:"type:text"`
	Year       string    `json:"tahun_terbit" gorm:"size:4;not null"`
	Pages      int       `json:"halaman"`
	Stock      int       `json:"stock" gorm:"not null;default:0"`
	CategoryID uint      `json:"kategori_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Category Category `json:"-" gorm:"foreignKey:CategoryID"`
}
