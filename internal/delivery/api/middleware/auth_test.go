package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := mockService.NewMockIdentityProvider(t)
	authUC := mockUsecase.NewMockAuthUsecase(t)
	claims := &entity.SessionClaims{Subject: "uid-1", Email: "ada@example.com"}

	identity.EXPECT().VerifySession(mock.Anything, "token-1").Return(claims, nil).Once()
	authUC.EXPECT().RestoreSession(mock.Anything, claims).Return(entity.AuthSnapshot{}).Once()

	c, rec := newAuthContext("Bearer token-1")

	var seen *entity.SessionClaims
	err := NewAuthMiddleware(identity, authUC).Authenticate(func(c echo.Context) error {
		seen, _ = GetClaims(c)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, claims, seen)

	subject, ok := GetSubject(c)
	assert.True(t, ok)
	assert.Equal(t, "uid-1", subject)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		verify bool
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Basic abc"},
		{name: "invalid token", header: "Bearer bad", verify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := mockService.NewMockIdentityProvider(t)
			authUC := mockUsecase.NewMockAuthUsecase(t)
			if tt.verify {
				identity.EXPECT().VerifySession(mock.Anything, "bad").
					Return(nil, domainerrors.ErrUnauthenticated).Once()
			}

			c, rec := newAuthContext(tt.header)
			err := NewAuthMiddleware(identity, authUC).Authenticate(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			authUC.AssertNotCalled(t, "RestoreSession", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	admin := entity.RoleAdmin

	t.Run("role claim", func(t *testing.T) {
		m := NewAuthMiddleware(mockService.NewMockIdentityProvider(t), mockUsecase.NewMockAuthUsecase(t))
		c, rec := newAuthContext("")
		c.Set(claimsContextKey, &entity.SessionClaims{Subject: "uid-1", Role: &admin})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("profile role", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Snapshot("uid-1").Return(entity.AuthSnapshot{User: &entity.User{ID: "uid-1", Role: &admin}}).Once()

		m := NewAuthMiddleware(mockService.NewMockIdentityProvider(t), authUC)
		c, rec := newAuthContext("")
		c.Set(claimsContextKey, &entity.SessionClaims{Subject: "uid-1"})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("customer", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Snapshot("uid-2").Return(entity.AuthSnapshot{User: &entity.User{ID: "uid-2"}}).Once()

		m := NewAuthMiddleware(mockService.NewMockIdentityProvider(t), authUC)
		c, rec := newAuthContext("")
		c.Set(claimsContextKey, &entity.SessionClaims{Subject: "uid-2"})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		m := NewAuthMiddleware(mockService.NewMockIdentityProvider(t), mockUsecase.NewMockAuthUsecase(t))
		c, rec := newAuthContext("")

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
