package server

import (
	"time"

	"golf-wager/internal/domain"
	"golf-wager/internal/service"
	"golf-wager/internal/settlement"
)

type Empty struct{}

type HoleMessage struct {
	Number      int `json:"number"`
	Par         int `json:"par"`
	StrokeIndex int `json:"stroke_index"`
}

type ImportCourseRequest struct {
	CourseID string `json:"course_id"`
}

type CourseResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Holes []HoleMessage `json:"holes"`
}

type SideBetsMessage struct {
	Greenies      bool `json:"greenies"`
	Sandies       bool `json:"sandies"`
	Snake         bool `json:"snake"`
	BirdiesDouble bool `json:"birdies_double"`
	BonusSkins    bool `json:"bonus_skins"`
}

type PlayerMessage struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"display_name"`
	HandicapIndex *float64 `json:"handicap_index"`
	Team          string   `json:"team,omitempty"`
	IsGuest       bool     `json:"is_guest,omitempty"`
}

type CreateMatchRequest struct {
	CourseID    string          `json:"course_id"`
	Format      string          `json:"format"`
	WagerAmount int64           `json:"wager_amount"`
	TeamMode    string          `json:"team_mode,omitempty"`
	SideBets    SideBetsMessage `json:"side_bets"`
	TrashValue  int64           `json:"trash_value"`
	Players     []PlayerMessage `json:"players"`
}

type MatchResponse struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type RecordScoreRequest struct {
	MatchID  string   `json:"match_id"`
	PlayerID string   `json:"player_id"`
	Hole     int      `json:"hole"`
	Gross    int      `json:"gross"`
	Tags     []string `json:"tags,omitempty"`
}

type AddPressRequest struct {
	MatchID   string `json:"match_id"`
	StartHole int    `json:"start_hole"`
	Team      string `json:"team"`
}

type PressResponse struct {
	ID        string `json:"id"`
	StartHole int    `json:"start_hole"`
	Team      string `json:"team"`
}

type MatchRequest struct {
	MatchID string `json:"match_id"`
}

type SettleMatchResponse struct {
	MatchID  string                       `json:"match_id"`
	Status   string                       `json:"status"`
	Lines    map[string][]settlement.Line `json:"lines"`
	Totals   map[string]domain.Money      `json:"totals"`
	Rejected []settlement.ScoreError      `json:"rejected,omitempty"`
}

type AnnotationsResponse struct {
	Holes []service.HoleAnnotation `json:"holes"`
}

type PlayerHistoryRequest struct {
	PlayerID string `json:"player_id"`
}

type PlayerHistoryResponse struct {
	Matches []service.MatchSummary `json:"matches"`
}

type LeaderboardResponse struct {
	Entries []service.LeaderboardEntry `json:"entries"`
}

func (r *CreateMatchRequest) params() service.CreateMatchParams {
	p := service.CreateMatchParams{
		CourseID: r.CourseID,
		Config: domain.WagerConfig{
			Format:      domain.Format(r.Format),
			WagerAmount: domain.Money(r.WagerAmount),
			TeamMode:    domain.TeamMode(r.TeamMode),
			SideBets: domain.SideBets{
				Greenies:      r.SideBets.Greenies,
				Sandies:       r.SideBets.Sandies,
				Snake:         r.SideBets.Snake,
				BirdiesDouble: r.SideBets.BirdiesDouble,
				BonusSkins:    r.SideBets.BonusSkins,
			},
			TrashValue: domain.Money(r.TrashValue),
		},
		Players: make([]domain.Player, len(r.Players)),
	}
	for i, pl := range r.Players {
		p.Players[i] = domain.Player{
			ID:            pl.ID,
			DisplayName:   pl.DisplayName,
			HandicapIndex: pl.HandicapIndex,
			Team:          domain.Team(pl.Team),
			IsGuest:       pl.IsGuest,
		}
	}
	return p
}

func courseResponse(c *domain.Course) *CourseResponse {
	resp := &CourseResponse{ID: c.ID, Name: c.Name, Holes: make([]HoleMessage, len(c.Holes))}
	for i, h := range c.Holes {
		resp.Holes[i] = HoleMessage{Number: h.Number, Par: h.Par, StrokeIndex: h.StrokeIndex}
	}
	return resp
}
