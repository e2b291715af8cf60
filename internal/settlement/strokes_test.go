package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-wager/internal/domain"
)

func TestAllowance(t *testing.T) {
	tests := []struct {
		name string
		hcp  int
		want func(strokeIndex int) int
	}{
		{name: "scratch", hcp: 0, want: func(int) int { return 0 }},
		{name: "one per hole", hcp: 18, want: func(int) int { return 1 }},
		{name: "two extra on hardest", hcp: 20, want: func(si int) int {
			if si <= 2 {
				return 2
			}
			return 1
		}},
		{name: "nine", hcp: 9, want: func(si int) int {
			if si <= 9 {
				return 1
			}
			return 0
		}},
		{name: "plus two gives back on easiest", hcp: -2, want: func(si int) int {
			if si >= 17 {
				return -1
			}
			return 0
		}},
		{name: "thirty six", hcp: 36, want: func(int) int { return 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for si := 1; si <= HolesPerRound; si++ {
				assert.Equal(t, tt.want(si), Allowance(tt.hcp, si), "stroke index %d", si)
			}
		})
	}
}

func TestCourseHandicap(t *testing.T) {
	tests := []struct {
		index float64
		want  int
	}{
		{12.4, 12},
		{12.5, 13},
		{0.4, 0},
		{-0.4, 0},
		{-1.5, -2},
		{27.9, 28},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CourseHandicap(tt.index), "index %v", tt.index)
	}
}

func TestTeamSpot(t *testing.T) {
	players := []domain.Player{
		player("a1", domain.TeamA, 4.2),
		player("a2", domain.TeamA, 10),
		player("b1", domain.TeamB, 12.6),
		player("b2", domain.TeamB, 5),
	}
	h := map[string]int{"a1": 4, "a2": 10, "b1": 13, "b2": 5}

	team, diff := teamSpot(players, h)
	assert.Equal(t, domain.TeamB, team)
	assert.Equal(t, 4, diff)

	h["a2"] = 14
	team, diff = teamSpot(players, h)
	assert.Equal(t, domain.Team(""), team)
	assert.Equal(t, 0, diff)
	assert.False(t, receivesTeamStroke(diff, 1))
}

func TestMatch_IsStrokeHole(t *testing.T) {
	m, err := Prepare(Snapshot{
		Config:  nassauConfig(domain.TeamModeSingles, 10),
		Holes:   testCourse(),
		Players: []domain.Player{player("alice", domain.TeamA, 10.2), player("bob", domain.TeamB, 4)},
	})
	require.NoError(t, err)

	for n := 1; n <= HolesPerRound; n++ {
		assert.Equal(t, testIndices[n-1] <= 6, m.IsStrokeHole(n), "hole %d", n)
	}
	assert.False(t, m.IsStrokeHole(0))
	assert.False(t, m.IsStrokeHole(19))
}

func TestMatch_NetScores(t *testing.T) {
	m, err := Prepare(Snapshot{
		Config:  nassauConfig(domain.TeamModeSingles, 10),
		Holes:   testCourse(),
		Players: []domain.Player{player("alice", domain.TeamA, 20), player("bob", domain.TeamB, 0)},
		Scores:  concat(card("alice", plus(18, 1)...), card("bob", pars(18)...)),
	})
	require.NoError(t, err)

	// hole 4 is stroke index 1: two strokes for a 20
	net, ok := m.Net("alice", 4)
	require.True(t, ok)
	assert.Equal(t, testPars[3]+1-2, net)

	net, ok = m.Net("alice", 1)
	require.True(t, ok)
	assert.Equal(t, testPars[0], net)

	allowance, ok := m.Allowance("bob", 4)
	require.True(t, ok)
	assert.Zero(t, allowance)

	_, ok = m.Net("carol", 1)
	assert.False(t, ok)
}
