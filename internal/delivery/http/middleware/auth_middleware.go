package middleware

import (
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorIDKey is the context key holding the authenticated admin actor's ID.
const actorIDKey = "actorID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the Bearer access token and stores the actor ID on
// the request context. Tokens are minted by the identity service; this API
// only verifies them.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		// The identity service puts the actor in "sub"; older tokens used
		// "user_id".
		actorIDStr, ok := claims["sub"].(string)
		if !ok || actorIDStr == "" {
			actorIDStr, ok = claims["user_id"].(string)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Actor ID missing from token"})
			}
		}
		actorID, err := uuid.Parse(actorIDStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid actor ID format in token"})
		}

		c.Set(actorIDKey, actorID)

		return next(c)
	}
}

// GetActorID returns the authenticated actor's ID set by Authenticate.
func GetActorID(c echo.Context) (uuid.UUID, bool) {
	actorID, ok := c.Get(actorIDKey).(uuid.UUID)

	return actorID, ok
}
