package bracket

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
)

// Round describes one column of the single-elimination tree.
type Round struct {
	Code  string
	Stage match.Stage
	Slots int
}

// Rounds lists the fixed 16-team bracket from the first knockout round to the final.
var Rounds = []Round{
	{Code: "r16", Stage: match.StageRound16, Slots: 8},
	{Code: "qf", Stage: match.StageQuarter, Slots: 4},
	{Code: "sf", Stage: match.StageSemi, Slots: 2},
	{Code: "final", Stage: match.StageFinal, Slots: 1},
}

type DrawPolicy string

const (
	// DrawUndecided leaves the winner empty when a completed knockout match ends level.
	DrawUndecided DrawPolicy = "undecided"
	// DrawFavorsTeamA awards drawn knockout matches to team A.
	DrawFavorsTeamA DrawPolicy = "team_a"
)

var ErrInvalidDrawPolicy = errors.New("invalid bracket draw policy")

func ParseDrawPolicy(v string) (DrawPolicy, error) {
	switch DrawPolicy(strings.ToLower(strings.TrimSpace(v))) {
	case "", DrawUndecided:
		return DrawUndecided, nil
	case DrawFavorsTeamA:
		return DrawFavorsTeamA, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDrawPolicy, v)
	}
}

// Slot is one derived bracket position. It is rebuilt from matches on every read.
type Slot struct {
	ID        string
	Round     string
	Position  int
	TeamAID   string
	TeamAName string
	TeamBID   string
	TeamBName string
	WinnerID  string
	MatchID   string
	Score     *match.Score
	Status    match.Status
}

func (s Slot) IsEmpty() bool {
	return s.MatchID == "" && s.TeamAID == "" && s.TeamBID == ""
}

// Unplaced reports a knockout match that could not be attached to a slot.
type Unplaced struct {
	MatchID string
	Reason  string
}

func SlotID(round string, position int) string {
	return round + "-" + strconv.Itoa(position)
}

// Empty returns the 15 unassigned slots in round order.
func Empty() []Slot {
	total := 0
	for _, r := range Rounds {
		total += r.Slots
	}

	out := make([]Slot, 0, total)
	for _, r := range Rounds {
		for pos := 1; pos <= r.Slots; pos++ {
			out = append(out, Slot{
				ID:       SlotID(r.Code, pos),
				Round:    r.Code,
				Position: pos,
			})
		}
	}
	return out
}

// NextSlotID returns the slot the winner of the given slot should be entered into.
// The final has no next slot.
func NextSlotID(round string, position int) (string, bool) {
	for i, r := range Rounds {
		if r.Code != round || i+1 >= len(Rounds) {
			continue
		}
		return SlotID(Rounds[i+1].Code, (position+1)/2), true
	}
	return "", false
}

var (
	ErrMissingPosition = errors.New("missing bracket position")
	ErrRoundMismatch   = errors.New("bracket label does not match match stage")
)

// Position resolves the bracket position of a knockout match. Older records keep the
// position in the group label, either as "3" or as a slot id like "qf-3". A slot id
// whose round differs from the match stage is rejected.
func Position(m match.Match) (int, error) {
	if m.BracketPosition > 0 {
		return m.BracketPosition, nil
	}

	label := strings.TrimSpace(m.GroupName)
	if idx := strings.LastIndex(label, "-"); idx >= 0 {
		round := label[:idx]
		if !strings.EqualFold(round, m.Stage.BracketRound()) {
			return 0, fmt.Errorf("%w: label %q on %s match", ErrRoundMismatch, m.GroupName, m.Stage)
		}
		label = label[idx+1:]
	}
	pos, err := strconv.Atoi(label)
	if err != nil || pos <= 0 {
		return 0, ErrMissingPosition
	}
	return pos, nil
}

// Hydrate fills slots from knockout matches. Winners are only derived for completed
// matches; nothing is advanced into later rounds.
func Hydrate(slots []Slot, matches []match.Match, teamNames map[string]string, policy DrawPolicy) ([]Slot, []Unplaced) {
	out := make([]Slot, len(slots))
	copy(out, slots)

	index := make(map[string]int, len(out))
	for i, s := range out {
		index[s.ID] = i
	}

	var unplaced []Unplaced
	for _, m := range matches {
		if !m.Stage.IsKnockout() {
			continue
		}
		pos, err := Position(m)
		if err != nil {
			unplaced = append(unplaced, Unplaced{MatchID: m.ID, Reason: err.Error()})
			continue
		}
		idx, ok := index[SlotID(m.Stage.BracketRound(), pos)]
		if !ok {
			unplaced = append(unplaced, Unplaced{MatchID: m.ID, Reason: fmt.Sprintf("position %d out of range for %s", pos, m.Stage)})
			continue
		}
		if out[idx].MatchID != "" {
			unplaced = append(unplaced, Unplaced{MatchID: m.ID, Reason: "slot already taken by match " + out[idx].MatchID})
			continue
		}

		slot := &out[idx]
		slot.MatchID = m.ID
		slot.Status = m.Status
		slot.TeamAID = m.TeamAID
		slot.TeamAName = teamNames[m.TeamAID]
		slot.TeamBID = m.TeamBID
		slot.TeamBName = teamNames[m.TeamBID]
		if m.Score != nil {
			score := *m.Score
			slot.Score = &score
		}
		if m.IsCompleted() {
			slot.WinnerID = winner(m, policy)
		}
	}

	return out, unplaced
}

func winner(m match.Match, policy DrawPolicy) string {
	if id := m.Winner(); id != "" {
		return id
	}
	if m.Score != nil && policy == DrawFavorsTeamA {
		return m.TeamAID
	}
	return ""
}
