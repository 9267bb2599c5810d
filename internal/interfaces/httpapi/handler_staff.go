package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-tournament/internal/usecase"
)

type createStaffRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Role  string `json:"role" validate:"required,oneof=referee organizer medic coach"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStaff")
	defer span.End()

	items, err := h.staffService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list staff failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]staffDTO, 0, len(items))
	for _, m := range items {
		out = append(out, staffToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateStaff")
	defer span.End()

	var req createStaffRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.staffService.Create(ctx, usecase.CreateStaffInput{
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create staff failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, staffToDTO(item))
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteStaff")
	defer span.End()

	staffID := pathValue(r, "staffID")
	if err := h.staffService.Delete(ctx, staffID); err != nil {
		h.logger.WarnContext(ctx, "delete staff failed", "staff_id", staffID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
