package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/riskibarqy/football-tournament/internal/config"
	"github.com/riskibarqy/football-tournament/internal/domain/account"
	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/staff"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/account/session"
	cacherepo "github.com/riskibarqy/football-tournament/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-tournament/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-tournament/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-tournament/internal/platform/cache"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
	"github.com/riskibarqy/football-tournament/internal/platform/password"
	"github.com/riskibarqy/football-tournament/internal/usecase"
)

const tokenIssuer = "football-tournament"

type repositories struct {
	teams    team.Repository
	matches  match.Repository
	groups   group.Repository
	staff    staff.Repository
	accounts account.Repository
	close    func() error
}

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases the database pool and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := session.NewManager(cfg.AuthJWTSecret, cfg.AuthTokenTTL, tokenIssuer)
	if err != nil {
		_ = repos.close()
		return nil, nil, fmt.Errorf("build token manager: %w", err)
	}

	ids := idgen.NewXIDGenerator("")
	teamSvc := usecase.NewTeamService(repos.teams, repos.matches, repos.groups, ids, logger)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.groups, ids, logger)
	groupSvc := usecase.NewGroupService(repos.groups, repos.teams, ids)
	staffSvc := usecase.NewStaffService(repos.staff, ids)
	standingSvc := usecase.NewStandingService(repos.teams, repos.matches, repos.groups, cfg.StandingsWriteWorkers, logger)
	syncSvc := usecase.NewSyncService(repos.teams, repos.groups, logger)
	bracketSvc := usecase.NewBracketService(repos.teams, repos.matches, cfg.BracketDrawPolicy, logger)
	scorerSvc := usecase.NewScorerService(repos.matches)
	var statsWriteMu sync.Mutex
	matchSvc.ShareWriteLock(&statsWriteMu)
	standingSvc.ShareWriteLock(&statsWriteMu)
	authSvc := usecase.NewAuthService(repos.accounts, password.NewBcryptHasher(cfg.AuthBcryptCost), tokens, ids, logger)

	if err := bootstrap(ctx, cfg, standingSvc, authSvc, logger); err != nil {
		_ = repos.close()
		return nil, nil, err
	}

	handler := httpapi.NewHandler(teamSvc, matchSvc, groupSvc, staffSvc, standingSvc, syncSvc, bracketSvc, scorerSvc, authSvc, logger)
	router := httpapi.NewRouter(handler, authSvc, logger, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		LoginLimiter:       httpapi.NewClientLimiter(cfg.AuthLoginRate, cfg.AuthLoginBurst),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var repos repositories
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := postgres.Open(ctx, postgres.Options{
			URL:                   cfg.DBURL,
			DisablePreparedBinary: cfg.DBDisablePreparedBinary,
			MaxOpenConns:          cfg.DBMaxOpenConns,
		})
		if err != nil {
			return repositories{}, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("seed database: %w", err)
		}
		repos = repositories{
			teams:    postgres.NewTeamRepository(db),
			matches:  postgres.NewMatchRepository(db),
			groups:   postgres.NewGroupRepository(db),
			staff:    postgres.NewStaffRepository(db),
			accounts: postgres.NewAccountRepository(db),
			close:    db.Close,
		}
		logger.Info("storage ready", "driver", config.StoragePostgres, "db_name", postgres.DBName(cfg.DBURL))
	default:
		repos = repositories{
			teams:    memory.NewTeamRepository(memory.SeedTeams()),
			matches:  memory.NewMatchRepository(memory.SeedMatches()),
			groups:   memory.NewGroupRepository(memory.SeedGroups()),
			staff:    memory.NewStaffRepository(memory.SeedStaff()),
			accounts: memory.NewAccountRepository(),
			close:    func() error { return nil },
		}
		logger.Info("storage ready", "driver", config.StorageMemory)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.matches = cacherepo.NewMatchRepository(repos.matches, store)
		repos.groups = cacherepo.NewGroupRepository(repos.groups, store)
	}

	return repos, nil
}

// bootstrap brings stored stats in line with recorded matches and provisions
// the configured admin account.
func bootstrap(ctx context.Context, cfg config.Config, standings *usecase.StandingService, auth *usecase.AuthService, logger *logging.Logger) error {
	result, err := standings.RecomputeAll(ctx)
	if err != nil {
		return fmt.Errorf("recompute standings: %w", err)
	}
	logger.Info("standings recomputed at startup",
		"teams_updated", result.TeamsUpdated,
		"matches_processed", result.MatchesProcessed,
		"skipped", len(result.Skipped),
	)

	if cfg.BootstrapAdminUsername == "" {
		return nil
	}
	if err := auth.EnsureAdmin(ctx, cfg.BootstrapAdminUsername, cfg.BootstrapAdminPassword); err != nil {
		return fmt.Errorf("bootstrap admin account: %w", err)
	}

	return nil
}
