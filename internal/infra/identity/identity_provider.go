package identity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/identitytoolkit/v3"
)

// adminAuth is the part of the Firebase admin auth client the provider uses.
type adminAuth interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
}

type listenerEntry struct {
	id       uint64
	listener service.SessionListener
}

// firebaseIdentity implements service.IdentityProvider on top of Firebase
// Authentication.
type firebaseIdentity struct {
	admin   adminAuth
	toolkit *identitytoolkit.Service
	tokens  service.TokenInspector
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.RWMutex
	nextID    uint64
	listeners []listenerEntry
}

// ProviderParams holds dependencies for the identity provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Auth    *auth.Client
	Toolkit *identitytoolkit.Service
	Tokens  service.TokenInspector
	Logger  *slog.Logger
}

// NewIdentityProvider is the constructor for the Firebase identity provider.
func NewIdentityProvider(params ProviderParams) service.IdentityProvider {
	return newFirebaseIdentity(params.Auth, params.Toolkit, params.Tokens, params.Logger)
}

func newFirebaseIdentity(admin adminAuth, toolkit *identitytoolkit.Service, tokens service.TokenInspector, logger *slog.Logger) *firebaseIdentity {
	return &firebaseIdentity{
		admin:   admin,
		toolkit: toolkit,
		tokens:  tokens,
		logger:  logger,
		now:     time.Now,
	}
}

// SignIn verifies the password with the Identity Toolkit API. Errors from the
// API are returned as they are.
func (p *firebaseIdentity) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	resp, err := p.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	fallback := p.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	session := &entity.Session{
		Subject:      resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    p.tokens.ExpiresAt(resp.IdToken, fallback),
	}

	p.notify(ctx, entity.SessionEvent{
		Subject:     session.Subject,
		Email:       session.Email,
		DisplayName: session.DisplayName,
		SignedIn:    true,
	})

	return session, nil
}

// CreateAccount creates the Firebase user and signs it in.
func (p *firebaseIdentity) CreateAccount(ctx context.Context, email, password, displayName string) (*entity.Session, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := p.admin.CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}
	p.logger.Info("Created identity account", slog.String("subject", record.UID))

	return p.SignIn(ctx, email, password)
}

// SignOut revokes every refresh token of subject.
func (p *firebaseIdentity) SignOut(ctx context.Context, subject string) error {
	if err := p.admin.RevokeRefreshTokens(ctx, subject); err != nil {
		return err
	}

	p.notify(ctx, entity.SessionEvent{Subject: subject})

	return nil
}

// VerifySession checks a bearer ID token against Firebase. Tokens issued before
// the subject signed out are rejected.
func (p *firebaseIdentity) VerifySession(ctx context.Context, idToken string) (*entity.SessionClaims, error) {
	token, err := p.admin.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		if auth.IsIDTokenRevoked(err) {
			p.logger.Debug("Rejected revoked ID token")
		}

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated.WithDetails(err.Error()), "failed to verify ID token")
	}

	return &entity.SessionClaims{
		Subject:     token.UID,
		Email:       stringClaim(token.Claims, "email"),
		DisplayName: stringClaim(token.Claims, "name"),
		Role:        entity.RoleFromString(stringClaim(token.Claims, "role")),
	}, nil
}

// OnSessionChange registers listener. Listeners run in registration order.
func (p *firebaseIdentity) OnSessionChange(listener service.SessionListener) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, listenerEntry{id: id, listener: listener})

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		for i, entry := range p.listeners {
			if entry.id == id {
				p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)

				return
			}
		}
	}
}

func (p *firebaseIdentity) notify(ctx context.Context, event entity.SessionEvent) {
	p.mu.RLock()
	listeners := make([]listenerEntry, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.RUnlock()

	for _, entry := range listeners {
		entry.listener(ctx, event)
	}
}

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}

	return ""
}
