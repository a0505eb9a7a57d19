package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/service"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/httpx"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterHandler creates user accounts. New accounts default to the viewer
// role unless another valid role is supplied.
type RegisterHandler struct {
	Auth *service.AuthService
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager viewer"`
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeValid(w, r, &req) {
		return
	}

	role := domain.RoleViewer
	if req.Role != "" {
		parsed, err := domain.ParseRole(req.Role)
		if err != nil {
			errInvalidRequest.withDescription("unknown role").write(w)
			return
		}
		role = parsed
	}

	u, err := h.Auth.Register(r.Context(), req.Email, req.Password, role)
	if err != nil {
		var weak *service.WeakPasswordError
		switch {
		case errors.As(err, &weak):
			errWeakPassword.withDescription(weak.Reason).write(w)
		case errors.Is(err, service.ErrEmailTaken):
			errConflict.withDescription("user with this email already exists").write(w)
		default:
			errServer.write(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// LoginHandler exchanges credentials for a token pair.
type LoginHandler struct {
	Auth *service.AuthService
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeValid(w, r, &req) {
		return
	}

	pair, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			errInvalidCredentials.write(w)
		case errors.Is(err, service.ErrInactiveAccount):
			errInactiveAccount.write(w)
		default:
			errServer.write(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// RefreshHandler rotates a refresh token into a fresh pair.
type RefreshHandler struct {
	Auth *service.AuthService
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeValid(w, r, &req) {
		return
	}

	pair, err := h.Auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh):
			errInvalidToken.withDescription("invalid or expired refresh token").write(w)
		case errors.Is(err, service.ErrInactiveAccount):
			errInactiveAccount.write(w)
		default:
			errServer.write(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// LogoutHandler revokes a refresh token. Presenting a token that is unknown
// or already revoked is a client error, not a silent success.
type LogoutHandler struct {
	Auth *service.AuthService
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeValid(w, r, &req) {
		return
	}

	if err := h.Auth.Logout(r.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			errInvalidRequest.withDescription("refresh token not found or already revoked").write(w)
			return
		}
		errServer.write(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "successfully logged out"})
}

// MeHandler returns the authenticated user's own profile.
type MeHandler struct{}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		errInvalidToken.write(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}
