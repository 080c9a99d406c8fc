// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is the tenant that owns cards, tiers and rewards. The core only reads it.
type Restaurant struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	QRCodeSecret      string    `json:"-"`                   // HMAC key for card codes, never serialized.
	QRCodeVersion     int       `json:"qr_code_version"`     // Stamped on codes generated under the current secret.
	PointsPerPurchase int       `json:"points_per_purchase"` // Percentage of the purchase amount credited as base points.
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasSigningSecret reports whether codes can be signed for this restaurant.
func (r *Restaurant) HasSigningSecret() bool {
	return r != nil && r.QRCodeSecret != ""
}
