package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/usecase"
)

type scheduleMatchRequest struct {
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	TeamAID         string `json:"teamAId" validate:"required"`
	TeamBID         string `json:"teamBId" validate:"required,nefield=TeamAID"`
	Stage           string `json:"stage" validate:"required,oneof=group round16 quarter semi final"`
	GroupName       string `json:"groupName" validate:"omitempty,max=40"`
	BracketPosition int    `json:"bracketPosition" validate:"gte=0"`
}

type updateMatchRequest struct {
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Status *string `json:"status" validate:"omitempty,oneof=scheduled live completed"`
}

type matchEventRequest struct {
	Type       string `json:"type" validate:"required,oneof=goal yellowCard redCard"`
	PlayerName string `json:"playerName" validate:"required,max=120"`
	TeamID     string `json:"teamId" validate:"required"`
	Minute     int    `json:"minute" validate:"gte=0,lte=130"`
}

type recordResultRequest struct {
	TeamAGoals    *int                `json:"teamAGoals" validate:"required"`
	TeamBGoals    *int                `json:"teamBGoals" validate:"required"`
	Events        []matchEventRequest `json:"events" validate:"omitempty,dive"`
	ManOfTheMatch string              `json:"manOfTheMatch" validate:"omitempty,max=120"`
	Revise        bool                `json:"revise"`
}

func (r matchEventRequest) toDomain() match.Event {
	return match.Event{
		Type:       match.EventType(r.Type),
		PlayerName: r.PlayerName,
		TeamID:     r.TeamID,
		Minute:     r.Minute,
	}
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	q := r.URL.Query()
	filter := match.Filter{
		Stage:  match.Stage(strings.TrimSpace(q.Get("stage"))),
		Status: match.Status(strings.TrimSpace(q.Get("status"))),
		TeamID: q.Get("team_id"),
	}

	items, err := h.matchService.List(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := pathValue(r, "matchID")
	item, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleMatch")
	defer span.End()

	var req scheduleMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Schedule(ctx, usecase.ScheduleMatchInput{
		Date:            req.Date,
		Time:            req.Time,
		TeamAID:         req.TeamAID,
		TeamBID:         req.TeamBID,
		Stage:           req.Stage,
		GroupName:       req.GroupName,
		BracketPosition: req.BracketPosition,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule match failed", "team_a", req.TeamAID, "team_b", req.TeamBID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := pathValue(r, "matchID")
	var req updateMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Update(ctx, usecase.UpdateMatchInput{
		MatchID: matchID,
		Date:    req.Date,
		Time:    req.Time,
		Status:  req.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) StartLiveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartLiveMatch")
	defer span.End()

	matchID := pathValue(r, "matchID")
	item, err := h.matchService.StartLive(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "start live match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) AddMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatchEvent")
	defer span.End()

	matchID := pathValue(r, "matchID")
	var req matchEventRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.AddEvent(ctx, matchID, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "add match event failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	matchID := pathValue(r, "matchID")
	var req recordResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var events []match.Event
	if req.Events != nil {
		events = make([]match.Event, 0, len(req.Events))
		for _, ev := range req.Events {
			events = append(events, ev.toDomain())
		}
	}

	item, err := h.matchService.RecordResult(ctx, usecase.RecordResultInput{
		MatchID:       matchID,
		TeamAGoals:    *req.TeamAGoals,
		TeamBGoals:    *req.TeamBGoals,
		Events:        events,
		ManOfTheMatch: req.ManOfTheMatch,
		Revise:        req.Revise,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := pathValue(r, "matchID")
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
