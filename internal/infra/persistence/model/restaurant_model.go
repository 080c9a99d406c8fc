// Package model contains the GORM persistence structs. Entities never leak GORM tags.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	QRCodeSecret      string    `gorm:"column:qr_code_secret;type:varchar(255);not null;default:''"`
	QRCodeVersion     int       `gorm:"column:qr_code_version;not null;default:1"`
	PointsPerPurchase int       `gorm:"not null;default:0"`
	IsActive          bool      `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
