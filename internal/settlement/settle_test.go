package settlement

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-wager/internal/domain"
)

func TestSettle_RejectsBadInput(t *testing.T) {
	base := func() Snapshot {
		return Snapshot{
			Config:  nassauConfig(domain.TeamModeSingles, 10),
			Holes:   testCourse(),
			Players: singles(),
		}
	}

	tests := []struct {
		name   string
		mutate func(*Snapshot)
		want   error
	}{
		{name: "unknown format", mutate: func(s *Snapshot) { s.Config.Format = "wolf" }, want: ErrInvalidWagerConfig},
		{name: "zero wager", mutate: func(s *Snapshot) { s.Config.WagerAmount = 0 }, want: ErrInvalidWagerConfig},
		{name: "negative trash", mutate: func(s *Snapshot) { s.Config.TrashValue = -1 }, want: ErrInvalidWagerConfig},
		{name: "nassau without team mode", mutate: func(s *Snapshot) { s.Config.TeamMode = "" }, want: ErrInvalidWagerConfig},
		{name: "skins with team mode", mutate: func(s *Snapshot) { s.Config.Format = domain.FormatSkins }, want: ErrInvalidWagerConfig},
		{name: "team mode mismatch", mutate: func(s *Snapshot) { s.Config.TeamMode = domain.TeamModeFours }, want: ErrInvalidWagerConfig},
		{name: "missing handicap", mutate: func(s *Snapshot) { s.Players[1].HandicapIndex = nil }, want: ErrIncompleteHandicapData},
		{name: "unknown team", mutate: func(s *Snapshot) { s.Players[1].Team = "C" }, want: ErrInvalidWagerConfig},
		{name: "duplicate player", mutate: func(s *Snapshot) { s.Players[1].ID = s.Players[0].ID }, want: ErrInvalidWagerConfig},
		{name: "short course", mutate: func(s *Snapshot) { s.Holes = s.Holes[:17] }, want: ErrInvalidCourse},
		{name: "repeated stroke index", mutate: func(s *Snapshot) { s.Holes[1].StrokeIndex = s.Holes[0].StrokeIndex }, want: ErrInvalidCourse},
		{name: "par out of range", mutate: func(s *Snapshot) { s.Holes[0].Par = 6 }, want: ErrInvalidCourse},
		{name: "press off the course", mutate: func(s *Snapshot) {
			s.Presses = []domain.Press{{StartHole: 19, PressedByTeam: domain.TeamA}}
		}, want: ErrInvalidPress},
		{name: "press in skins", mutate: func(s *Snapshot) {
			s.Config = skinsConfig(1)
			s.Presses = []domain.Press{{StartHole: 3, PressedByTeam: domain.TeamA}}
		}, want: ErrInvalidPress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base()
			tt.mutate(&snap)
			res, err := Settle(snap)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestErrInvalidPressIsAConfigError(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidPress, ErrInvalidWagerConfig))
}

// randomSnapshot builds a round with random scores, dots and presses. Some
// holes are left unplayed when partial is set.
func randomSnapshot(f *gofakeit.Faker, partial bool) Snapshot {
	cfg := domain.WagerConfig{
		WagerAmount: domain.Money(f.IntRange(1, 20)),
		TrashValue:  domain.Money(f.IntRange(0, 5)),
		SideBets: domain.SideBets{
			Greenies:      f.Bool(),
			Sandies:       f.Bool(),
			Snake:         f.Bool(),
			BirdiesDouble: f.Bool(),
		},
	}

	var players []domain.Player
	switch f.IntRange(0, 2) {
	case 0:
		cfg.Format, cfg.TeamMode = domain.FormatNassau, domain.TeamModeSingles
		players = []domain.Player{
			player("a1", domain.TeamA, f.Float64Range(-3, 30)),
			player("b1", domain.TeamB, f.Float64Range(-3, 30)),
		}
	case 1:
		cfg.Format, cfg.TeamMode = domain.FormatNassau, domain.TeamModeFours
		players = []domain.Player{
			player("a1", domain.TeamA, f.Float64Range(-3, 30)),
			player("b1", domain.TeamB, f.Float64Range(-3, 30)),
			player("a2", domain.TeamA, f.Float64Range(-3, 30)),
			player("b2", domain.TeamB, f.Float64Range(-3, 30)),
		}
	default:
		cfg.Format = domain.FormatSkins
		cfg.SideBets.BonusSkins = f.Bool()
		n := f.IntRange(2, 6)
		for i := 0; i < n; i++ {
			players = append(players, player(f.UUID(), "", f.Float64Range(-3, 30)))
		}
	}

	var scores []domain.HoleScore
	for n := 1; n <= HolesPerRound; n++ {
		if partial && f.IntRange(0, 4) == 0 {
			continue
		}
		for _, p := range players {
			s := domain.HoleScore{PlayerID: p.ID, HoleNumber: n, Gross: testPars[n-1] + f.IntRange(-2, 3)}
			for t := domain.TagGreenie; t <= domain.TagPin; t++ {
				if f.IntRange(0, 5) == 0 {
					s.Tags = s.Tags.With(t)
				}
			}
			scores = append(scores, s)
		}
	}

	var presses []domain.Press
	if cfg.Format == domain.FormatNassau {
		for i := f.IntRange(0, 3); i > 0; i-- {
			team := domain.TeamA
			if f.Bool() {
				team = domain.TeamB
			}
			presses = append(presses, domain.Press{StartHole: f.IntRange(1, 18), PressedByTeam: team})
		}
	}

	return Snapshot{MatchID: f.UUID(), Config: cfg, Holes: testCourse(), Players: players, Scores: scores, Presses: presses}
}

func shuffled(f *gofakeit.Faker, scores []domain.HoleScore) []domain.HoleScore {
	out := append([]domain.HoleScore(nil), scores...)
	for i := len(out) - 1; i > 0; i-- {
		j := f.IntRange(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func TestSettle_ZeroSum(t *testing.T) {
	f := gofakeit.New(7)
	for i := 0; i < 200; i++ {
		snap := randomSnapshot(f, i%2 == 1)
		res, err := Settle(snap)
		require.NoError(t, err)
		require.Zero(t, sumTotals(res), "iteration %d (%s %s)", i, snap.Config.Format, snap.Config.TeamMode)

		for id, lines := range res.Lines {
			var total domain.Money
			for _, l := range lines {
				total += l.Amount
			}
			require.Equal(t, total, res.Totals[id])
		}
	}
}

func TestSettle_Deterministic(t *testing.T) {
	f := gofakeit.New(11)
	for i := 0; i < 50; i++ {
		snap := randomSnapshot(f, i%3 == 0)

		first, err := Settle(snap)
		require.NoError(t, err)
		again, err := Settle(snap)
		require.NoError(t, err)

		reordered := snap
		reordered.Scores = shuffled(f, snap.Scores)
		third, err := Settle(reordered)
		require.NoError(t, err)

		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("repeat settlement differs (-first +again):\n%s", diff)
		}
		if diff := cmp.Diff(first, third); diff != "" {
			t.Fatalf("shuffled settlement differs (-first +shuffled):\n%s", diff)
		}
		assert.Equal(t, snap.Fingerprint(), reordered.Fingerprint())
	}
}

func TestSnapshot_Fingerprint(t *testing.T) {
	snap := Snapshot{
		MatchID: "m1",
		Config:  nassauConfig(domain.TeamModeSingles, 10),
		Holes:   testCourse(),
		Players: singles(),
		Scores:  concat(card("alice", pars(3)...), card("bob", pars(3)...)),
	}
	base := snap.Fingerprint()
	assert.Len(t, base, 64)

	changed := snap
	changed.Scores = concat(card("alice", pars(3)...), card("bob", plus(3, 1)...))
	assert.NotEqual(t, base, changed.Fingerprint())

	pressed := snap
	pressed.Presses = []domain.Press{{StartHole: 2, PressedByTeam: domain.TeamB}}
	assert.NotEqual(t, base, pressed.Fingerprint())

	swapped := snap
	swapped.Players = []domain.Player{snap.Players[1], snap.Players[0]}
	assert.NotEqual(t, base, swapped.Fingerprint(), "listing order breaks team-stroke ties")
}
