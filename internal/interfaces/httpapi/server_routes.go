package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler, loginLimiter *ClientLimiter) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/search", handler.SearchTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/groups", handler.ListGroups)
	mux.HandleFunc("GET /v1/groups/{groupID}", handler.GetGroup)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/bracket", handler.GetBracket)
	mux.HandleFunc("GET /v1/stats/top-scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/stats/discipline", handler.ListDiscipline)
	mux.HandleFunc("GET /v1/staff", handler.ListStaff)
	mux.Handle("POST /v1/auth/login", RateLimit(loginLimiter, http.HandlerFunc(handler.Login)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAuth(verifier, fn))
	}

	admin("POST /v1/admin/accounts", handler.RegisterAccount)

	admin("POST /v1/admin/teams", handler.RegisterTeam)
	admin("POST /v1/admin/teams/{teamID}/players", handler.AddPlayer)
	admin("PUT /v1/admin/teams/{teamID}/players/{playerID}/fee", handler.MarkFeePaid)
	admin("DELETE /v1/admin/teams/{teamID}", handler.DeleteTeam)

	admin("POST /v1/admin/matches", handler.ScheduleMatch)
	admin("PUT /v1/admin/matches/{matchID}", handler.UpdateMatch)
	admin("POST /v1/admin/matches/{matchID}/live", handler.StartLiveMatch)
	admin("POST /v1/admin/matches/{matchID}/events", handler.AddMatchEvent)
	admin("POST /v1/admin/matches/{matchID}/result", handler.RecordMatchResult)
	admin("DELETE /v1/admin/matches/{matchID}", handler.DeleteMatch)

	admin("POST /v1/admin/groups", handler.CreateGroup)
	admin("POST /v1/admin/groups/{groupID}/teams", handler.AssignGroupTeam)
	admin("DELETE /v1/admin/groups/{groupID}/teams/{teamID}", handler.RemoveGroupTeam)
	admin("POST /v1/admin/groups/{groupID}/complete", handler.CompleteGroup)
	admin("DELETE /v1/admin/groups/{groupID}", handler.DeleteGroup)

	admin("POST /v1/admin/staff", handler.CreateStaff)
	admin("DELETE /v1/admin/staff/{staffID}", handler.DeleteStaff)

	admin("POST /v1/admin/standings/recompute", handler.RecomputeStandings)
	admin("GET /v1/admin/standings/validate", handler.ValidateStandings)
	admin("POST /v1/admin/sync/groups", handler.SyncGroups)
}
