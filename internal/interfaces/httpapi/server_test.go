package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-tournament/internal/domain/bracket"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/account/session"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/riskibarqy/football-tournament/internal/platform/password"
	"github.com/riskibarqy/football-tournament/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminUser = "admin"
	testAdminPass = "correct-horse"
)

type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T, limiter *ClientLimiter) *testServer {
	t.Helper()
	ctx := context.Background()
	logger := logging.NewNop()
	ids := idgen.NewXIDGenerator("")

	teams := memory.NewTeamRepository(memory.SeedTeams())
	matches := memory.NewMatchRepository(memory.SeedMatches())
	groups := memory.NewGroupRepository(memory.SeedGroups())
	staffRepo := memory.NewStaffRepository(memory.SeedStaff())

	tokens, err := session.NewManager("test-secret-0123456789", time.Hour, "football-tournament-test")
	require.NoError(t, err)
	auth := usecase.NewAuthService(memory.NewAccountRepository(), password.NewBcryptHasher(bcrypt.MinCost), tokens, ids, logger)
	require.NoError(t, auth.EnsureAdmin(ctx, testAdminUser, testAdminPass))

	standings := usecase.NewStandingService(teams, matches, groups, 2, logger)
	_, err = standings.RecomputeAll(ctx)
	require.NoError(t, err)

	handler := NewHandler(
		usecase.NewTeamService(teams, matches, groups, ids, logger),
		usecase.NewMatchService(matches, teams, groups, ids, logger),
		usecase.NewGroupService(groups, teams, ids),
		usecase.NewStaffService(staffRepo, ids),
		standings,
		usecase.NewSyncService(teams, groups, logger),
		usecase.NewBracketService(teams, matches, bracket.DrawUndecided, logger),
		usecase.NewScorerService(matches),
		auth,
		logger,
	)

	return &testServer{
		handler: NewRouter(handler, auth, logger, RouterOptions{
			CORSAllowedOrigins: []string{"*"},
			LoginLimiter:       limiter,
		}),
	}
}

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "203.0.113.9:4000"
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/v1/auth/login", "", `{"username":"admin","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeData[loginDTO](t, rec).Token
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Data T `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env))
	return env.Data
}

func decodeErrorStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	return env.Error.Status
}

func TestRouter_Healthz(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := srv.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PublicStandingsRankGroup(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, http.MethodGet, "/v1/standings?group=A", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rows := decodeData[[]standingRowDTO](t, rec)
	require.Len(t, rows, 4)
	assert.Equal(t, "team-lions", rows[0].TeamID)
	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, 3, rows[0].Stats.Points)

	rec = srv.do(t, http.MethodGet, "/v1/standings?group=Z", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, http.MethodPost, "/v1/admin/standings/recompute", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeErrorStatus(t, rec))

	rec = srv.do(t, http.MethodPost, "/v1/admin/standings/recompute", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LoginRejectsBadPassword(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := srv.do(t, http.MethodPost, "/v1/auth/login", "", `{"username":"admin","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RecordResultUpdatesStandingsOnce(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.login(t)

	rec := srv.do(t, http.MethodPost, "/v1/admin/matches/m-004/result", token,
		`{"teamAGoals":2,"teamBGoals":0,"events":[{"type":"goal","playerName":"Bears Captain","teamId":"team-bears","minute":9}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decodeData[matchDTO](t, rec)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.Score)
	assert.Equal(t, 2, got.Score.TeamA)

	rec = srv.do(t, http.MethodPost, "/v1/admin/matches/m-004/result", token, `{"teamAGoals":3,"teamBGoals":0}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/teams/team-bears", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	bears := decodeData[teamDTO](t, rec)
	assert.Equal(t, 1, bears.Stats.Played)
	assert.Equal(t, 3, bears.Stats.Points)

	rec = srv.do(t, http.MethodGet, "/v1/admin/standings/validate", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decodeData[validationDTO](t, rec).InconsistenciesFound)
}

func TestRouter_RecordResultValidatesPayload(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.login(t)

	rec := srv.do(t, http.MethodPost, "/v1/admin/matches/m-004/result", token, `{"teamAGoals":1,"teamBGoals":0,"extra":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/admin/matches/m-004/result", token, `{"teamAGoals":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/admin/matches/m-004/result", token, `{"teamAGoals":-1,"teamBGoals":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/admin/matches/missing/result", token, `{"teamAGoals":1,"teamBGoals":0}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BracketShowsSeededQuarterFinal(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, http.MethodGet, "/v1/bracket", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeData[bracketDTO](t, rec)
	var qf1 *slotDTO
	for i := range view.Slots {
		if view.Slots[i].ID == bracket.SlotID("qf", 1) {
			qf1 = &view.Slots[i]
		}
	}
	require.NotNil(t, qf1)
	assert.Equal(t, "team-lions", qf1.TeamAID)
	assert.Equal(t, "team-tigers", qf1.TeamBID)
	assert.Empty(t, qf1.WinnerID)
	assert.Equal(t, "sf-1", qf1.NextSlotID)

	for _, s := range view.Slots {
		if s.Round == "final" {
			assert.Empty(t, s.NextSlotID)
		}
	}
}

func TestRouter_DeleteTeamWithMatchesConflicts(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.login(t)

	rec := srv.do(t, http.MethodDelete, "/v1/admin/teams/team-lions", token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_EXISTS", decodeErrorStatus(t, rec))
}

func TestRouter_RegisterTeamAndSearch(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.login(t)

	rec := srv.do(t, http.MethodPost, "/v1/admin/teams", token,
		`{"name":"Panthers","groupName":"A","players":[{"fullName":"Pat Panther","feePaid":false}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData[teamDTO](t, rec)
	assert.Equal(t, "A", created.GroupName)
	require.Len(t, created.Players, 1)
	assert.Equal(t, 1, created.UnpaidPlayers)

	rec = srv.do(t, http.MethodPost, "/v1/admin/teams", token, `{"name":"panthers"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/teams/search?q=panth", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	found := decodeData[[]teamDTO](t, rec)
	require.NotEmpty(t, found)
	assert.Equal(t, created.ID, found[0].ID)

	rec = srv.do(t, http.MethodGet, "/v1/groups/"+memory.GroupIDA, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeData[groupDTO](t, rec).TeamIDs, created.ID)
}

func TestRouter_SyncGroupsIsIdempotentOnSeed(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.login(t)

	rec := srv.do(t, http.MethodPost, "/v1/admin/sync/groups", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decodeData[usecase.SyncResult](t, rec).Updates)
}

func TestRouter_LoginIsRateLimited(t *testing.T) {
	srv := newTestServer(t, NewClientLimiter(0.001, 1))

	rec := srv.do(t, http.MethodPost, "/v1/auth/login", "", `{"username":"admin","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/auth/login", "", `{"username":"admin","password":"correct-horse"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRouter_TopScorers(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, http.MethodGet, "/v1/stats/top-scorers?limit=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeData[[]scorerDTO](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "Lions FC Captain", items[0].PlayerName)
	assert.Equal(t, 2, items[0].Goals)

	rec = srv.do(t, http.MethodGet, "/v1/stats/top-scorers?limit=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
