package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/usecase"
)

type createGroupRequest struct {
	Name string `json:"name" validate:"required,max=40"`
}

type assignTeamRequest struct {
	TeamID string `json:"teamId" validate:"required"`
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroups")
	defer span.End()

	items, err := h.groupService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list groups failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]groupDTO, 0, len(items))
	for _, g := range items {
		out = append(out, groupToDTO(g))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroup")
	defer span.End()

	groupID := pathValue(r, "groupID")
	item, err := h.groupService.Get(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get group failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, groupToDTO(item))
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGroup")
	defer span.End()

	var req createGroupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.groupService.Create(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create group failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, groupToDTO(item))
}

func (h *Handler) AssignGroupTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignGroupTeam")
	defer span.End()

	groupID := pathValue(r, "groupID")
	var req assignTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.groupService.AssignTeam(ctx, groupID, req.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "assign team failed", "group_id", groupID, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, groupToDTO(item))
}

func (h *Handler) RemoveGroupTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveGroupTeam")
	defer span.End()

	groupID := pathValue(r, "groupID")
	teamID := pathValue(r, "teamID")
	item, err := h.groupService.RemoveTeam(ctx, groupID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove team failed", "group_id", groupID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, groupToDTO(item))
}

// CompleteGroup marks a group finished; ?completed=false reopens it.
func (h *Handler) CompleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteGroup")
	defer span.End()

	groupID := pathValue(r, "groupID")
	completed := true
	if raw := strings.TrimSpace(r.URL.Query().Get("completed")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: completed must be a boolean", usecase.ErrInvalidInput))
			return
		}
		completed = v
	}

	item, err := h.groupService.MarkCompleted(ctx, groupID, completed)
	if err != nil {
		h.logger.WarnContext(ctx, "complete group failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, groupToDTO(item))
}

func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGroup")
	defer span.End()

	groupID := pathValue(r, "groupID")
	if err := h.groupService.Delete(ctx, groupID); err != nil {
		h.logger.WarnContext(ctx, "delete group failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
