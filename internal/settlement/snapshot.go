package settlement

import (
	"fmt"
	"math"

	"golf-wager/internal/domain"
)

const HolesPerRound = 18

// Snapshot is one consistent view of a match taken at a single point in time.
type Snapshot struct {
	MatchID string
	Config  domain.WagerConfig
	Holes   []domain.Hole
	Players []domain.Player
	Scores  []domain.HoleScore
	Presses []domain.Press
}

// ValidateConfig rejects wager configurations before any hole is looked at.
func ValidateConfig(cfg domain.WagerConfig) error {
	switch cfg.Format {
	case domain.FormatNassau:
		if cfg.TeamMode != domain.TeamModeSingles && cfg.TeamMode != domain.TeamModeFours {
			return configError("nassau requires team mode 1v1 or 2v2, got %q", cfg.TeamMode)
		}
	case domain.FormatSkins:
		if cfg.TeamMode != "" {
			return configError("team mode %q does not apply to skins", cfg.TeamMode)
		}
	default:
		return configError("unknown format %q", cfg.Format)
	}
	if cfg.WagerAmount <= 0 {
		return configError("wager amount must be positive, got %d", cfg.WagerAmount)
	}
	if cfg.TrashValue < 0 {
		return configError("trash value must not be negative, got %d", cfg.TrashValue)
	}
	return nil
}

// ValidateCourse checks for exactly 18 holes whose stroke indices are a permutation of 1..18.
func ValidateCourse(holes []domain.Hole) error {
	if len(holes) != HolesPerRound {
		return courseError("expected %d holes, got %d", HolesPerRound, len(holes))
	}
	var numbers, indices [HolesPerRound + 1]bool
	for _, h := range holes {
		if h.Number < 1 || h.Number > HolesPerRound {
			return courseError("hole number %d out of range", h.Number)
		}
		if numbers[h.Number] {
			return courseError("hole %d listed twice", h.Number)
		}
		numbers[h.Number] = true
		if h.Par < 3 || h.Par > 5 {
			return courseError("hole %d has par %d", h.Number, h.Par)
		}
		if h.StrokeIndex < 1 || h.StrokeIndex > HolesPerRound {
			return courseError("hole %d has stroke index %d", h.Number, h.StrokeIndex)
		}
		if indices[h.StrokeIndex] {
			return courseError("stroke index %d used twice", h.StrokeIndex)
		}
		indices[h.StrokeIndex] = true
	}
	return nil
}

// ValidatePlayers checks the roster against the format and that every player
// carries a handicap index.
func ValidatePlayers(cfg domain.WagerConfig, players []domain.Player) error {
	seen := make(map[string]bool, len(players))
	perTeam := map[domain.Team]int{}
	for _, p := range players {
		if p.ID == "" {
			return configError("player without id")
		}
		if seen[p.ID] {
			return configError("player %s listed twice", p.ID)
		}
		seen[p.ID] = true
		if p.HandicapIndex == nil || math.IsNaN(*p.HandicapIndex) || math.IsInf(*p.HandicapIndex, 0) {
			return fmt.Errorf("%w: player %s", ErrIncompleteHandicapData, p.ID)
		}
		if cfg.Format == domain.FormatNassau {
			if !p.Team.Valid() {
				return configError("player %s has team %q", p.ID, p.Team)
			}
			perTeam[p.Team]++
		}
	}

	switch cfg.Format {
	case domain.FormatNassau:
		want := 1
		if cfg.TeamMode == domain.TeamModeFours {
			want = 2
		}
		if perTeam[domain.TeamA] != want || perTeam[domain.TeamB] != want {
			return configError("%s needs %d player(s) per team, got A=%d B=%d",
				cfg.TeamMode, want, perTeam[domain.TeamA], perTeam[domain.TeamB])
		}
	case domain.FormatSkins:
		if len(players) < 2 {
			return configError("skins needs at least 2 players, got %d", len(players))
		}
	}
	return nil
}

func ValidatePresses(cfg domain.WagerConfig, presses []domain.Press) error {
	if len(presses) > 0 && cfg.Format != domain.FormatNassau {
		return fmt.Errorf("%w: presses only apply to nassau", ErrInvalidPress)
	}
	for _, p := range presses {
		if p.StartHole < 1 || p.StartHole > HolesPerRound {
			return fmt.Errorf("%w: start hole %d", ErrInvalidPress, p.StartHole)
		}
		if !p.PressedByTeam.Valid() {
			return fmt.Errorf("%w: team %q", ErrInvalidPress, p.PressedByTeam)
		}
	}
	return nil
}
