package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/riskibarqy/football-tournament/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	teamService     *usecase.TeamService
	matchService    *usecase.MatchService
	groupService    *usecase.GroupService
	staffService    *usecase.StaffService
	standingService *usecase.StandingService
	syncService     *usecase.SyncService
	bracketService  *usecase.BracketService
	scorerService   *usecase.ScorerService
	authService     *usecase.AuthService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	groupService *usecase.GroupService,
	staffService *usecase.StaffService,
	standingService *usecase.StandingService,
	syncService *usecase.SyncService,
	bracketService *usecase.BracketService,
	scorerService *usecase.ScorerService,
	authService *usecase.AuthService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:     teamService,
		matchService:    matchService,
		groupService:    groupService,
		staffService:    staffService,
		standingService: standingService,
		syncService:     syncService,
		bracketService:  bracketService,
		scorerService:   scorerService,
		authService:     authService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest reads a strict JSON body into payload and runs struct validation.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func pathValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PathValue(key))
}
