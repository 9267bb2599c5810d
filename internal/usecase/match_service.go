package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/football-tournament/internal/domain/bracket"
	"github.com/riskibarqy/football-tournament/internal/domain/group"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/domain/standing"
	"github.com/riskibarqy/football-tournament/internal/domain/team"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
	"github.com/riskibarqy/football-tournament/internal/platform/logging"
)

type ScheduleMatchInput struct {
	Date            string
	Time            string
	TeamAID         string
	TeamBID         string
	Stage           string
	GroupName       string
	BracketPosition int
}

// UpdateMatchInput carries optional edits; nil fields are left unchanged.
type UpdateMatchInput struct {
	MatchID string
	Date    *string
	Time    *string
	Status  *string
}

type RecordResultInput struct {
	MatchID       string
	TeamAGoals    int
	TeamBGoals    int
	Events        []match.Event
	ManOfTheMatch string
	// Revise allows replacing the result of an already completed match.
	Revise bool
}

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	groupRepo group.Repository
	idGen     idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
	// writeMu serialises every read-check-write on matches and team stats.
	writeMu *sync.Mutex
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	groupRepo group.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		groupRepo: groupRepo,
		idGen:     idGen,
		logger:    logger,
		now:       time.Now,
		writeMu:   &sync.Mutex{},
	}
}

// ShareWriteLock makes the service serialise its writes with other holders of mu,
// such as the standings recompute.
func (s *MatchService) ShareWriteLock(mu *sync.Mutex) {
	if mu != nil {
		s.writeMu = mu
	}
}

func (s *MatchService) Schedule(ctx context.Context, input ScheduleMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Schedule")
	defer span.End()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	stage, err := match.ParseStage(input.Stage)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	now := s.now().UTC()
	item := match.Match{
		Date:      strings.TrimSpace(input.Date),
		Time:      strings.TrimSpace(input.Time),
		TeamAID:   strings.TrimSpace(input.TeamAID),
		TeamBID:   strings.TrimSpace(input.TeamBID),
		Stage:     stage,
		GroupName: strings.TrimSpace(input.GroupName),
		Status:    match.StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	for _, teamID := range []string{item.TeamAID, item.TeamBID} {
		if _, err := s.requireTeam(ctx, teamID); err != nil {
			return match.Match{}, err
		}
	}

	if stage == match.StageGroup && item.GroupName != "" && s.groupRepo != nil {
		_, exists, err := s.groupRepo.GetByName(ctx, item.GroupName)
		if err != nil {
			return match.Match{}, fmt.Errorf("get group: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: group=%s", ErrNotFound, item.GroupName)
		}
	}

	if stage.IsKnockout() {
		if err := s.assignBracketSlot(ctx, &item, input.BracketPosition); err != nil {
			return match.Match{}, err
		}
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	item.ID = matchID

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return item, nil
}

func (s *MatchService) assignBracketSlot(ctx context.Context, item *match.Match, position int) error {
	round := item.Stage.BracketRound()
	slots := 0
	for _, r := range bracket.Rounds {
		if r.Code == round {
			slots = r.Slots
		}
	}
	if position < 1 || position > slots {
		return fmt.Errorf("%w: bracket position must be between 1 and %d for %s", ErrInvalidInput, slots, item.Stage)
	}

	existing, err := s.matchRepo.List(ctx, match.Filter{Stage: item.Stage})
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	for _, m := range existing {
		if pos, err := bracket.Position(m); err == nil && pos == position {
			return fmt.Errorf("%w: bracket slot %s is already used by match %s", ErrConflict, bracket.SlotID(round, position), m.ID)
		}
	}

	item.BracketRound = round
	item.BracketPosition = position
	return nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	return s.requireMatch(ctx, matchID)
}

func (s *MatchService) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	if filter.Stage != "" {
		if _, err := match.ParseStage(string(filter.Stage)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	if filter.Status != "" {
		if _, err := match.ParseStatus(string(filter.Status)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	filter.TeamID = strings.TrimSpace(filter.TeamID)

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// Update edits kickoff details and moves a match between scheduled and live.
// Completion only happens through RecordResult.
func (s *MatchService) Update(ctx context.Context, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	item, err := s.requireMatch(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}

	if input.Date != nil {
		item.Date = strings.TrimSpace(*input.Date)
	}
	if input.Time != nil {
		item.Time = strings.TrimSpace(*input.Time)
	}
	if input.Status != nil {
		status, err := match.ParseStatus(*input.Status)
		if err != nil {
			return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if status == match.StatusCompleted {
			return match.Match{}, fmt.Errorf("%w: use the result endpoint to complete a match", ErrInvalidInput)
		}
		if item.IsCompleted() && status != item.Status {
			return match.Match{}, ErrAlreadyCompleted
		}
		item.Status = status
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	item.UpdatedAt = s.now().UTC()
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return item, nil
}

// StartLive opens live scoring with a 0-0 score.
func (s *MatchService) StartLive(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.StartLive")
	defer span.End()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	item, err := s.requireMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	switch item.Status {
	case match.StatusCompleted:
		return match.Match{}, ErrAlreadyCompleted
	case match.StatusLive:
		return item, nil
	}

	item.Status = match.StatusLive
	if item.Score == nil {
		item.Score = &match.Score{}
	}
	item.UpdatedAt = s.now().UTC()
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return item, nil
}

// AddEvent appends one event to a live match. Goals also move the live score.
func (s *MatchService) AddEvent(ctx context.Context, matchID string, event match.Event) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddEvent")
	defer span.End()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	item, err := s.requireMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Status != match.StatusLive {
		if item.IsCompleted() {
			return match.Match{}, ErrAlreadyCompleted
		}
		return match.Match{}, fmt.Errorf("%w: match %s is not live", ErrInvalidInput, item.ID)
	}

	event.PlayerName = strings.TrimSpace(event.PlayerName)
	if err := event.Validate(item); err != nil {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	item.Events = append(item.Events, event)
	if event.Type == match.EventGoal {
		if item.Score == nil {
			item.Score = &match.Score{}
		}
		score := *item.Score
		if event.TeamID == item.TeamAID {
			score.TeamA++
		} else {
			score.TeamB++
		}
		item.Score = &score
	}

	item.UpdatedAt = s.now().UTC()
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return item, nil
}

// RecordResult completes a match and applies the outcome to both teams' stats incrementally.
// A completed match is only accepted again with Revise, which reverses the previous outcome first.
func (s *MatchService) RecordResult(ctx context.Context, input RecordResultInput) (_ match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer finishSpan(span, &err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	item, err := s.requireMatch(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}

	score := match.Score{TeamA: input.TeamAGoals, TeamB: input.TeamBGoals}
	if err := score.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if item.IsCompleted() && !input.Revise {
		return match.Match{}, ErrAlreadyCompleted
	}
	for i := range input.Events {
		input.Events[i].PlayerName = strings.TrimSpace(input.Events[i].PlayerName)
		if err := input.Events[i].Validate(item); err != nil {
			return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	teamA, err := s.requireTeam(ctx, item.TeamAID)
	if err != nil {
		return match.Match{}, err
	}
	teamB, err := s.requireTeam(ctx, item.TeamBID)
	if err != nil {
		return match.Match{}, err
	}

	statsA, statsB := teamA.Stats, teamB.Stats
	if item.IsCompleted() {
		if prev := item.Score; prev != nil {
			statsA = standing.ApplyOutcome(statsA, prev.TeamA, prev.TeamB, -1)
			statsB = standing.ApplyOutcome(statsB, prev.TeamB, prev.TeamA, -1)
		} else {
			s.logger.WarnContext(ctx, "revising completed match without stored score", "match_id", item.ID)
		}
	}
	statsA = standing.ApplyOutcome(statsA, score.TeamA, score.TeamB, 1)
	statsB = standing.ApplyOutcome(statsB, score.TeamB, score.TeamA, 1)

	item.Status = match.StatusCompleted
	item.Score = &score
	if input.Events != nil {
		item.Events = input.Events
	}
	if motm := strings.TrimSpace(input.ManOfTheMatch); motm != "" {
		item.ManOfTheMatch = motm
	}
	if item.Stage.IsKnockout() {
		item.BracketRound = item.Stage.BracketRound()
	}
	item.UpdatedAt = s.now().UTC()

	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if err := s.teamRepo.UpdateStats(ctx, teamA.ID, statsA); err != nil {
		s.logger.ErrorContext(ctx, "team stats left stale after result", "match_id", item.ID, "team_id", teamA.ID, "error", err)
		return match.Match{}, fmt.Errorf("update stats team=%s: %w", teamA.ID, err)
	}
	if err := s.teamRepo.UpdateStats(ctx, teamB.ID, statsB); err != nil {
		s.logger.ErrorContext(ctx, "team stats left stale after result", "match_id", item.ID, "team_id", teamB.ID, "error", err)
		return match.Match{}, fmt.Errorf("update stats team=%s: %w", teamB.ID, err)
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", item.ID,
		"score", fmt.Sprintf("%d-%d", score.TeamA, score.TeamB),
		"revised", input.Revise,
	)
	return item, nil
}

// Delete removes a match. A completed match first has its outcome reversed on both teams.
func (s *MatchService) Delete(ctx context.Context, matchID string) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer finishSpan(span, &err)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	item, err := s.requireMatch(ctx, matchID)
	if err != nil {
		return err
	}

	if item.IsCompleted() && item.Score != nil {
		reversals := []struct {
			teamID       string
			goalsFor     int
			goalsAgainst int
		}{
			{item.TeamAID, item.Score.TeamA, item.Score.TeamB},
			{item.TeamBID, item.Score.TeamB, item.Score.TeamA},
		}
		for _, r := range reversals {
			t, exists, err := s.teamRepo.GetByID(ctx, r.teamID)
			if err != nil {
				return fmt.Errorf("get team: %w", err)
			}
			if !exists {
				continue
			}
			stats := standing.ApplyOutcome(t.Stats, r.goalsFor, r.goalsAgainst, -1)
			if err := s.teamRepo.UpdateStats(ctx, t.ID, stats); err != nil {
				return fmt.Errorf("update stats team=%s: %w", t.ID, err)
			}
		}
	}

	if err := s.matchRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

func (s *MatchService) requireMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) requireTeam(ctx context.Context, teamID string) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}
