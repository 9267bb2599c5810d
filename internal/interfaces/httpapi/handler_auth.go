package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-tournament/internal/usecase"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "username", req.Username, "client_ip", resolveClientIP(r), "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, loginDTO{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		AdminID:   res.Principal.AdminID,
		Username:  res.Principal.Username,
	})
}

func (h *Handler) RegisterAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterAccount")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req credentialsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.authService.Register(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "register account failed", "by", principal.Username, "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.logger.InfoContext(ctx, "admin account created", "by", principal.Username, "username", item.Username)
	writeSuccess(ctx, w, http.StatusCreated, accountDTO{
		ID:        item.ID,
		Username:  item.Username,
		CreatedAt: item.CreatedAt,
	})
}
