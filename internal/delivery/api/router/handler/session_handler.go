package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	sessionEventName  = "session"
	keepAliveInterval = 25 * time.Second
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// SessionHandler exposes the current-user state of the authenticated subject.
type SessionHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// GetSession returns the current-user snapshot
func (h *SessionHandler) GetSession(c echo.Context) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session subject not found in context")
	}

	return response.Success(c, http.StatusOK, h.authUC.Snapshot(subject))
}

// StreamSession pushes every state change as a server-sent event until the
// client goes away. The current state is sent first.
func (h *SessionHandler) StreamSession(c echo.Context) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session subject not found in context")
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	updates, unsubscribe := h.authUC.Subscribe(subject)
	defer unsubscribe()

	res := c.Response()
	// The stream outlives the server write timeout.
	_ = http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{})
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, open := <-updates:
			if !open {
				return nil
			}
			if err := writeSnapshotEvent(res, snapshot); err != nil {
				logger.Warn("Session stream write failed", slog.String("subject", subject), slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func writeSnapshotEvent(res *echo.Response, snapshot entity.AuthSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", sessionEventName, data); err != nil {
		return err
	}
	res.Flush()

	return nil
}

// UpdateProfile merges the set fields into the current user's profile. When
// the subject has no current user nothing is written and data is null.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session subject not found in context")
	}

	var patch UpdateProfileRequest
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&patch); err != nil {
		return err
	}

	user, err := h.authUC.UpdateUser(c.Request().Context(), subject, patch.toUserPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Name      *string           `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone     *string           `json:"phone,omitempty" validate:"omitempty,max=32"`
	Addresses *[]entity.Address `json:"addresses,omitempty"`
}

func (r *UpdateProfileRequest) toUserPatch() *entity.UserPatch {
	return &entity.UserPatch{
		Name:      r.Name,
		Phone:     r.Phone,
		Addresses: r.Addresses,
	}
}
