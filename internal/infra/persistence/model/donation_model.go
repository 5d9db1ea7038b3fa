// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel is the GORM-specific struct for the 'donations' table.
// The quantity column carries a CHECK so a negative value can never be
// written, even by a buggy query.
type DonationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MedicineName string    `gorm:"type:varchar(255);not null;index"`
	Quantity     int       `gorm:"not null;check:quantity >= 0"`
	City         string    `gorm:"type:varchar(128);not null;index"`
	Latitude     *float64  `gorm:"type:decimal(9,6)"`
	Longitude    *float64  `gorm:"type:decimal(9,6)"`
	ExpiresAt    *time.Time
	DonorName    string `gorm:"type:varchar(255);not null"`
	DonorEmail   string `gorm:"type:varchar(255);not null"`
	DonorPhone   string `gorm:"type:varchar(64)"`
	Status       string `gorm:"type:varchar(16);not null;default:'pending';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}
