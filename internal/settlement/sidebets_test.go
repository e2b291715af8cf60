package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-wager/internal/domain"
)

func TestTrashAmount(t *testing.T) {
	tests := []struct {
		name     string
		penalty  bool
		my, opp  int
		mySize   int
		oppSize  int
		value    domain.Money
		expected domain.Money
	}{
		{name: "winning dots scale by payers", my: 3, opp: 1, mySize: 2, oppSize: 2, value: 5, expected: 20},
		{name: "losing dots scale by my side", my: 1, opp: 3, mySize: 2, oppSize: 2, value: 5, expected: -20},
		{name: "even dots", my: 2, opp: 2, mySize: 2, oppSize: 2, value: 5, expected: 0},
		{name: "singles", my: 2, opp: 0, mySize: 1, oppSize: 1, value: 3, expected: 6},
		{name: "empty paying side falls back unscaled", my: 0, opp: 2, mySize: 0, oppSize: 1, value: 5, expected: -10},
		{name: "snake holder pays", penalty: true, my: 2, opp: 0, mySize: 2, oppSize: 2, value: 5, expected: -20},
		{name: "snake clean side collects", penalty: true, my: 0, opp: 2, mySize: 2, oppSize: 2, value: 5, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trashAmount(tt.penalty, tt.my, tt.opp, tt.mySize, tt.oppSize, tt.value)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func fourballRound(holes int) []domain.HoleScore {
	var scores []domain.HoleScore
	for _, id := range []string{"a1", "a2", "b1", "b2"} {
		scores = append(scores, card(id, pars(holes)...)...)
	}
	return scores
}

func scoreIndex(scores []domain.HoleScore, playerID string, hole int) int {
	for i, s := range scores {
		if s.PlayerID == playerID && s.HoleNumber == hole {
			return i
		}
	}
	return -1
}

func TestTrash_SnakeIsAPenalty(t *testing.T) {
	cfg := nassauConfig(domain.TeamModeFours, 10)
	cfg.SideBets.Snake = true
	cfg.TrashValue = 5

	scores := fourballRound(5)
	scores[scoreIndex(scores, "a1", 2)].Tags = domain.NewTags(domain.TagSnake)
	scores[scoreIndex(scores, "a2", 5)].Tags = domain.NewTags(domain.TagSnake)

	res, err := Settle(Snapshot{Config: cfg, Holes: testCourse(), Players: fourball(), Scores: scores})
	require.NoError(t, err)

	for _, id := range []string{"a1", "a2"} {
		snake, ok := findLine(res.Lines[id], "Snake")
		require.True(t, ok)
		assert.Equal(t, domain.Money(-20), snake.Amount, "scaled by team B's two players")
		assert.Equal(t, "2-0", snake.Sublabel)
	}
	for _, id := range []string{"b1", "b2"} {
		snake, ok := findLine(res.Lines[id], "Snake")
		require.True(t, ok)
		assert.Equal(t, domain.Money(20), snake.Amount)
	}
	assert.Zero(t, sumTotals(res))
}

func TestTrash_GreeniesAndSandies(t *testing.T) {
	cfg := nassauConfig(domain.TeamModeFours, 10)
	cfg.SideBets.Greenies = true
	cfg.SideBets.Sandies = true
	cfg.TrashValue = 2

	scores := fourballRound(18)
	scores[scoreIndex(scores, "a1", 3)].Tags = domain.NewTags(domain.TagGreenie)
	scores[scoreIndex(scores, "a2", 7)].Tags = domain.NewTags(domain.TagGreenie, domain.TagSandie)
	scores[scoreIndex(scores, "b1", 11)].Tags = domain.NewTags(domain.TagGreenie)
	// a par 4 greenie does not count
	scores[scoreIndex(scores, "b2", 1)].Tags = domain.NewTags(domain.TagGreenie)

	m, err := Prepare(Snapshot{Config: cfg, Holes: testCourse(), Players: fourball(), Scores: scores})
	require.NoError(t, err)

	lines := m.resolveTrash(m.team(domain.TeamA), m.team(domain.TeamB), "")
	assert.Equal(t, []Line{
		{Label: "Greenies", Sublabel: "2-1", Amount: 4},
		{Label: "Sandies", Sublabel: "1-0", Amount: 4},
	}, lines)

	res := m.Settle()
	assert.Zero(t, sumTotals(res))
	assert.Equal(t, 2, m.SkinDots(7, "a2"))
	assert.Zero(t, m.SkinDots(1, "b2"))
}

func TestTrash_SkinsPairsEveryPlayer(t *testing.T) {
	cfg := skinsConfig(1)
	cfg.SideBets.Sandies = true
	cfg.TrashValue = 3

	players := []domain.Player{player("p1", "", 0), player("p2", "", 0), player("p3", "", 0)}
	scores := concat(card("p1", pars(2)...), card("p2", pars(2)...), card("p3", pars(2)...))
	scores = tag(scores, 2, domain.TagSandie) // all three sandies on hole 2
	scores[scoreIndex(scores, "p1", 1)].Tags = domain.NewTags(domain.TagSandie)

	res, err := Settle(Snapshot{Config: cfg, Holes: testCourse(), Players: players, Scores: scores})
	require.NoError(t, err)

	vsP2, ok := findLine(res.Lines["p1"], "Sandies vs p2")
	require.True(t, ok)
	assert.Equal(t, domain.Money(3), vsP2.Amount)

	vsP1, ok := findLine(res.Lines["p3"], "Sandies vs p1")
	require.True(t, ok)
	assert.Equal(t, domain.Money(-3), vsP1.Amount)

	assert.Equal(t, domain.Money(6), res.Totals["p1"])
	assert.Zero(t, sumTotals(res))
}
