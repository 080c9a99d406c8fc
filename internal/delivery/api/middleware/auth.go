package middleware

import (
	"strings"

	"loyalty/internal/delivery/api/response"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyClaims = "claims"
	keyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyClaims, claims)
		c.Set(keyRoles, entity.RolesFromStrings(claims.Roles))

		ctx := deliverycontext.WithActorID(c.Request().Context(), claims.ActorID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole lets the request through when the actor holds any of the roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(keyRoles).(entity.Roles)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !roles.ContainsAny(allowed...) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}

// RestaurantScope rejects staff tokens bound to a different restaurant than the
// one named by the route parameter. Admins and unbound tokens pass.
func (m *AuthMiddleware) RestaurantScope(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: claims missing")
			}
			if claims.RestaurantID == nil || entity.RolesFromStrings(claims.Roles).Contains(entity.RoleAdmin) {
				return next(c)
			}

			restaurantID, err := uuid.Parse(c.Param(param))
			if err != nil || restaurantID != *claims.RestaurantID {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: other restaurant")
			}

			return next(c)
		}
	}
}

// GetClaims returns the validated token claims.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok && claims != nil
}

// GetActorID returns the authenticated actor's ID.
func GetActorID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return uuid.Nil, false
	}

	return claims.ActorID, claims.ActorID != uuid.Nil
}

// HasRole reports whether the authenticated actor holds the role.
func HasRole(c echo.Context, role entity.Role) bool {
	roles, ok := c.Get(keyRoles).(entity.Roles)

	return ok && roles.Contains(role)
}
