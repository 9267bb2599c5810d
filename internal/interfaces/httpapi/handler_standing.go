package httpapi

import (
	"net/http"
)

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	groupName := r.URL.Query().Get("group")
	rows, err := h.standingService.ListTable(ctx, groupName)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "group", groupName, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingRowsToDTO(rows))
}

func (h *Handler) GetBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBracket")
	defer span.End()

	view, err := h.bracketService.Build(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build bracket failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, bracketToDTO(view))
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.scorerService.TopScorers(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, scorersToDTO(items))
}

func (h *Handler) ListDiscipline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDiscipline")
	defer span.End()

	items, err := h.scorerService.Discipline(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list discipline failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, bookingsToDTO(items))
}

func (h *Handler) RecomputeStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeStandings")
	defer span.End()

	res, err := h.standingService.RecomputeAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, recomputeToDTO(res))
}

func (h *Handler) ValidateStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ValidateStandings")
	defer span.End()

	res, err := h.standingService.Validate(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "validate standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, validationToDTO(res))
}

func (h *Handler) SyncGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncGroups")
	defer span.End()

	res, err := h.syncService.ReconcileGroupsAndTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync groups failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, res)
}
