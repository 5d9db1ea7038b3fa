package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestModel is the GORM-specific struct for the 'requests' table.
// The resolved_* columns are the denormalized donor snapshot copied in at
// approval time; they are never updated afterwards.
type RequestModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MedicineName     string    `gorm:"type:varchar(255);not null;index"`
	Quantity         int       `gorm:"not null;check:quantity > 0"`
	City             string    `gorm:"type:varchar(128);index"`
	Latitude         *float64  `gorm:"type:decimal(9,6)"`
	Longitude        *float64  `gorm:"type:decimal(9,6)"`
	DocumentRef      string    `gorm:"type:varchar(512)"`
	RequesterName    string    `gorm:"type:varchar(255);not null"`
	RequesterEmail   string    `gorm:"type:varchar(255);not null"`
	RequesterPhone   string    `gorm:"type:varchar(64)"`
	Status           string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	ContactDisclosed bool      `gorm:"not null;default:false"`

	ResolvedDonationID *uuid.UUID `gorm:"type:uuid"`
	ResolvedDonorName  string     `gorm:"type:varchar(255)"`
	ResolvedDonorEmail string     `gorm:"type:varchar(255)"`
	ResolvedDonorPhone string     `gorm:"type:varchar(64)"`
	ResolvedDonorLat   *float64   `gorm:"type:decimal(9,6)"`
	ResolvedDonorLng   *float64   `gorm:"type:decimal(9,6)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}
