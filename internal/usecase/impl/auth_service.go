// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identity    service.IdentityProvider
	profileRepo repository.ProfileRepository
	state       *authState
	logger      *slog.Logger
	now         func() time.Time
	unsubscribe func()
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Lc          fx.Lifecycle
	Identity    service.IdentityProvider
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. The subscription to the
// identity provider follows the application lifecycle.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		identity:    params.Identity,
		profileRepo: params.ProfileRepo,
		state:       newAuthState(),
		logger:      params.Logger,
		now:         time.Now,
	}

	params.Lc.Append(fx.Hook{
		OnStart: srv.start,
		OnStop:  srv.stop,
	})

	return srv
}

func (srv *authService) start(_ context.Context) error {
	srv.unsubscribe = srv.identity.OnSessionChange(srv.handleSessionEvent)
	srv.logger.Info("Subscribed to identity session changes")

	return nil
}

func (srv *authService) stop(_ context.Context) error {
	if srv.unsubscribe != nil {
		srv.unsubscribe()
		srv.unsubscribe = nil
	}
	srv.logger.Info("Unsubscribed from identity session changes")

	return nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// handleSessionEvent publishes exactly one snapshot per session-change event.
func (srv *authService) handleSessionEvent(ctx context.Context, event entity.SessionEvent) {
	unlock := srv.state.lockEvent(event.Subject)
	defer unlock()

	srv.publishForEvent(ctx, event)
}

func (srv *authService) publishForEvent(ctx context.Context, event entity.SessionEvent) entity.AuthSnapshot {
	if !event.SignedIn {
		srv.log(ctx).Debug("Session ended", slog.String("subject", event.Subject))

		return srv.state.publish(event.Subject, nil)
	}

	user, err := srv.profileRepo.FindByID(ctx, event.Subject)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrProfileNotFound):
		srv.log(ctx).Info("Profile document missing, publishing synthesized profile",
			slog.String("subject", event.Subject))
		user = entity.NewSynthesizedUser(event.Subject, event.Email, event.DisplayName)
	default:
		srv.log(ctx).Error("Failed to fetch profile, publishing synthesized profile",
			slog.String("subject", event.Subject),
			slog.Any("error", err))
		user = entity.NewSynthesizedUser(event.Subject, event.Email, event.DisplayName)
	}

	return srv.state.publish(event.Subject, user)
}

// Login signs in through the identity provider. Provider failures are logged
// and returned as they are.
func (srv *authService) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if password == "" {
		return nil, domainerrors.ErrInvalidArgument.WithMessage("Password is required")
	}

	session, err := srv.identity.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		srv.log(ctx).Error("Identity provider rejected sign-in",
			slog.String("email", email),
			slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Login successful", slog.String("subject", session.Subject))

	return &usecase.AuthResult{
		Session: session,
		User:    srv.state.snapshot(session.Subject).User,
	}, nil
}

// Register creates the provider account, writes the profile document keyed by
// the new subject and publishes it as the current user.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidArgument.WithMessage("Email and password required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = entity.DefaultUserName
	}

	srv.log(ctx).Info("Registering user", slog.String("email", email))

	session, err := srv.identity.CreateAccount(ctx, email, input.Password, name)
	if err != nil {
		srv.log(ctx).Error("Identity provider rejected registration",
			slog.String("email", email),
			slog.Any("error", err))

		return nil, err
	}

	user := &entity.User{
		ID:        session.Subject,
		Email:     email,
		Name:      name,
		Phone:     input.Phone,
		Addresses: []entity.Address{},
		CreatedAt: srv.now().UTC(),
	}

	if err := srv.profileRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to write profile document",
			slog.String("subject", session.Subject),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create profile")
	}

	unlock := srv.state.lockEvent(session.Subject)
	srv.state.publish(session.Subject, user)
	unlock()

	return &usecase.AuthResult{Session: session, User: user}, nil
}

// Logout ends the provider session; the resulting event publishes no user.
func (srv *authService) Logout(ctx context.Context, subject string) error {
	if err := srv.identity.SignOut(ctx, subject); err != nil {
		srv.log(ctx).Error("Identity provider sign-out failed",
			slog.String("subject", subject),
			slog.Any("error", err))

		return err
	}

	return nil
}

// UpdateUser merges the patch into the stored profile and republishes the merged user.
func (srv *authService) UpdateUser(ctx context.Context, subject string, patch *entity.UserPatch) (*entity.User, error) {
	unlock := srv.state.lockEvent(subject)
	defer unlock()

	current := srv.state.snapshot(subject).User
	if current == nil {
		srv.log(ctx).Debug("No current user, skipping profile update", slog.String("subject", subject))

		return nil, nil
	}

	if patch.IsEmpty() {
		return current, nil
	}

	if err := srv.profileRepo.Merge(ctx, subject, patch); err != nil {
		return nil, errors.Wrap(err, "failed to merge profile")
	}

	merged := patch.ApplyTo(current)
	srv.state.publish(subject, merged)

	return merged, nil
}

// RestoreSession processes a verified token as a sign-in event the first time
// its subject is seen.
func (srv *authService) RestoreSession(ctx context.Context, claims *entity.SessionClaims) entity.AuthSnapshot {
	if srv.state.processed(claims.Subject) {
		return srv.state.snapshot(claims.Subject)
	}

	unlock := srv.state.lockEvent(claims.Subject)
	defer unlock()

	// Another request may have processed the subject while we waited.
	if srv.state.processed(claims.Subject) {
		return srv.state.snapshot(claims.Subject)
	}

	return srv.publishForEvent(ctx, entity.SessionEvent{
		Subject:     claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		SignedIn:    true,
	})
}

// Snapshot returns the current-user state of subject.
func (srv *authService) Snapshot(subject string) entity.AuthSnapshot {
	return srv.state.snapshot(subject)
}

// Subscribe streams state changes of subject.
func (srv *authService) Subscribe(subject string) (<-chan entity.AuthSnapshot, func()) {
	return srv.state.subscribe(subject)
}
