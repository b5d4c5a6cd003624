package http

import (
	"context"
	"net/http"

	"github.com/juliocloud/s206-projeto-final/internal/gateway/middleware"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
)

// AuthService defines the interface for auth operations
type AuthService interface {
	Register(ctx context.Context, req application.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req application.LoginRequest) (string, error)
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, UserResponse{ID: user.ID, Email: user.Email})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// Me returns the identity carried by the bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteAppError(w, r, domain.ErrMissingToken)
		return
	}

	utils.WriteJSON(w, http.StatusOK, UserResponse{ID: identity.UserID, Email: identity.Email})
}
