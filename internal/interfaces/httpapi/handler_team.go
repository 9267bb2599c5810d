package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-tournament/internal/usecase"
)

type registerPlayerRequest struct {
	FullName string `json:"fullName" validate:"required,max=120"`
	FeePaid  bool   `json:"feePaid"`
}

type registerTeamRequest struct {
	Name      string                  `json:"name" validate:"required,max=80"`
	GroupName string                  `json:"groupName" validate:"omitempty,max=40"`
	Players   []registerPlayerRequest `json:"players" validate:"omitempty,max=40,dive"`
}

type markFeeRequest struct {
	Paid bool `json:"paid"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchTeams")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := r.URL.Query().Get("q")

	items, err := h.teamService.Search(ctx, query, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "search teams failed", "query", query, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := pathValue(r, "teamID")
	item, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterTeam")
	defer span.End()

	var req registerTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	players := make([]usecase.RegisterPlayerInput, 0, len(req.Players))
	for _, p := range req.Players {
		players = append(players, usecase.RegisterPlayerInput{FullName: p.FullName, FeePaid: p.FeePaid})
	}

	item, err := h.teamService.Register(ctx, usecase.RegisterTeamInput{
		Name:      req.Name,
		GroupName: req.GroupName,
		Players:   players,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register team failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	teamID := pathValue(r, "teamID")
	var req registerPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.AddPlayer(ctx, teamID, usecase.RegisterPlayerInput{
		FullName: req.FullName,
		FeePaid:  req.FeePaid,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add player failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) MarkFeePaid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkFeePaid")
	defer span.End()

	teamID := pathValue(r, "teamID")
	playerID := pathValue(r, "playerID")
	var req markFeeRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.MarkFeePaid(ctx, teamID, playerID, req.Paid)
	if err != nil {
		h.logger.WarnContext(ctx, "mark fee failed", "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := pathValue(r, "teamID")
	if err := h.teamService.Delete(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
