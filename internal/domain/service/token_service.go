package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of access tokens issued by the identity service.
type Claims struct {
	ActorID      uuid.UUID  `json:"actor_id"`
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty"` // Set for staff bound to one restaurant.
	Roles        []string   `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens. Issuance lives outside this module.
type TokenService interface {
	ValidateToken(tokenString string) (*Claims, error)
}
