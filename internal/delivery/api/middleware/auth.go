package middleware

import (
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "sessionClaims"

// AuthMiddleware authenticates Firebase ID tokens and enforces roles.
type AuthMiddleware struct {
	identity service.IdentityProvider
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, authUC: authUC}
}

// Authenticate verifies the bearer ID token and stores its claims on the
// context. The first verified token of a subject also restores that subject's
// current-user state.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		idToken, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || idToken == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		claims, err := m.identity.VerifySession(ctx, idToken)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		m.authUC.RestoreSession(ctx, claims)
		c.Set(claimsContextKey, claims)

		return next(c)
	}
}

// RequireRole allows the request when the token or the stored profile carries
// role. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok {
				return response.Unauthorized(c, "CONTEXT_ERROR", "Session claims not found in context")
			}

			if claims.Role != nil && *claims.Role == role {
				return next(c)
			}
			if m.authUC.Snapshot(claims.Subject).User.HasRole(role) {
				return next(c)
			}

			return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: require '"+role.String()+"' role")
		}
	}
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*entity.SessionClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(*entity.SessionClaims)

	return claims, ok && claims != nil
}

// GetSubject returns the authenticated subject identifier.
func GetSubject(c echo.Context) (string, bool) {
	claims, ok := GetClaims(c)
	if !ok || claims.Subject == "" {
		return "", false
	}

	return claims.Subject, true
}
