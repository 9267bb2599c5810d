package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
)

const defaultStandingWriteWorkers = 4

type RecomputeResult struct {
	TeamsUpdated     int                      `json:"teamsUpdated"`
	MatchesProcessed int                      `json:"matchesProcessed"`
	Skipped          []standing.Inconsistency `json:"skipped,omitempty"`
}

// TeamDrift describes a team whose stored stats disagree with a full replay.
type TeamDrift struct {
	TeamID   string     `json:"teamId"`
	TeamName string     `json:"teamName"`
	Fields   []string   `json:"fields"`
	Stored   team.Stats `json:"stored"`
	Computed team.Stats `json:"computed"`
}

type ValidationResult struct {
	InconsistenciesFound int                      `json:"inconsistenciesFound"`
	Teams                []TeamDrift              `json:"teams,omitempty"`
	SkippedMatches       []standing.Inconsistency `json:"skippedMatches,omitempty"`
}

type StandingService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	groupRepo group.Repository
	workers   int
	logger    *logging.Logger
	writeMu   *sync.Mutex
}

func NewStandingService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	groupRepo group.Repository,
	workers int,
	logger *logging.Logger,
) *StandingService {
	if workers <= 0 {
		workers = defaultStandingWriteWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		groupRepo: groupRepo,
		workers:   workers,
		logger:    logger,
		writeMu:   &sync.Mutex{},
	}
}

// ShareWriteLock makes RecomputeAll wait for in-flight result writes holding mu.
func (s *StandingService) ShareWriteLock(mu *sync.Mutex) {
	if mu != nil {
		s.writeMu = mu
	}
}

// RecomputeAll replays every completed match and overwrites each team's stored stats.
func (s *StandingService) RecomputeAll(ctx context.Context) (_ RecomputeResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.RecomputeAll")
	defer finishSpan(span, &err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	snap, err := loadSnapshot(ctx, s.teamRepo, s.matchRepo, match.Filter{Status: match.StatusCompleted})
	if err != nil {
		return RecomputeResult{}, err
	}

	computed := standing.Compute(snap.teamIDs(), snap.matches)
	s.logSkipped(ctx, computed.Skipped)

	updated, err := s.writeStats(ctx, computed.Stats)
	result := RecomputeResult{
		TeamsUpdated:     updated,
		MatchesProcessed: computed.MatchesProcessed,
		Skipped:          computed.Skipped,
	}
	if err != nil {
		return result, err
	}

	s.logger.InfoContext(ctx, "standings recomputed",
		"teams_updated", result.TeamsUpdated,
		"matches_processed", result.MatchesProcessed,
		"skipped", len(result.Skipped),
	)
	return result, nil
}

func (s *StandingService) writeStats(ctx context.Context, stats map[string]team.Stats) (int, error) {
	if len(stats) == 0 {
		return 0, nil
	}

	workerCount := s.workers
	if workerCount > len(stats) {
		workerCount = len(stats)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		updated atomic.Int32
		errMu   sync.Mutex
		errs    []error
		workers sync.WaitGroup
	)
	for teamID, value := range stats {
		teamID, value := teamID, value
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := s.teamRepo.UpdateStats(ctx, teamID, value); err != nil {
				errMu.Lock()
				errs = append(errs, fmt.Errorf("update stats team=%s: %w", teamID, err))
				errMu.Unlock()
				return
			}
			updated.Add(1)
		}); err != nil {
			workers.Done()
			return int(updated.Load()), fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	return int(updated.Load()), errors.Join(errs...)
}

// Validate replays the match log without writing and reports every disagreement.
func (s *StandingService) Validate(ctx context.Context) (_ ValidationResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Validate")
	defer finishSpan(span, &err)

	snap, err := loadSnapshot(ctx, s.teamRepo, s.matchRepo, match.Filter{Status: match.StatusCompleted})
	if err != nil {
		return ValidationResult{}, err
	}

	computed := standing.Compute(snap.teamIDs(), snap.matches)
	s.logSkipped(ctx, computed.Skipped)

	result := ValidationResult{SkippedMatches: computed.Skipped}
	for _, t := range snap.teams {
		want := computed.Stats[t.ID]
		fields := standing.Diff(t.Stats, want)
		if len(fields) == 0 {
			continue
		}
		result.Teams = append(result.Teams, TeamDrift{
			TeamID:   t.ID,
			TeamName: t.Name,
			Fields:   fields,
			Stored:   t.Stats,
			Computed: want,
		})
	}
	sort.SliceStable(result.Teams, func(i, j int) bool {
		return result.Teams[i].TeamID < result.Teams[j].TeamID
	})
	result.InconsistenciesFound = len(result.Teams) + len(result.SkippedMatches)

	if result.InconsistenciesFound > 0 {
		s.logger.WarnContext(ctx, "standings drift detected",
			"teams", len(result.Teams),
			"skipped_matches", len(result.SkippedMatches),
		)
	}
	return result, nil
}

// ListTable returns ranked rows for one group, or every team when groupName is empty.
func (s *StandingService) ListTable(ctx context.Context, groupName string) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListTable")
	defer span.End()

	groupName = strings.TrimSpace(groupName)
	if groupName != "" && s.groupRepo != nil {
		_, exists, err := s.groupRepo.GetByName(ctx, groupName)
		if err != nil {
			return nil, fmt.Errorf("get group: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: group=%s", ErrNotFound, groupName)
		}
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return standing.Rank(standing.RowsFromTeams(teams, groupName)), nil
}

func (s *StandingService) logSkipped(ctx context.Context, skipped []standing.Inconsistency) {
	for _, item := range skipped {
		s.logger.WarnContext(ctx, "match skipped during standings replay",
			"match_id", item.MatchID,
			"team_id", item.TeamID,
			"reason", item.Reason,
		)
	}
}
