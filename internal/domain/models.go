package domain

import (
	"time"
)

// Money is an amount in whole wager units. Settlement never divides money.
type Money int64

type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

func (t Team) Opponent() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

type Format string

const (
	FormatNassau Format = "nassau"
	FormatSkins  Format = "skins"
)

type TeamMode string

const (
	TeamModeSingles TeamMode = "1v1"
	TeamModeFours   TeamMode = "2v2"
)

type MatchStatus string

const (
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
)

type Course struct {
	ID        string
	Name      string
	Holes     []Hole
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Hole struct {
	Number      int
	Par         int
	StrokeIndex int
}

type Player struct {
	ID          string
	DisplayName string
	// HandicapIndex is frozen at match start. nil means the store has none.
	HandicapIndex *float64
	Team          Team
	IsGuest       bool
}

type HoleScore struct {
	PlayerID   string
	HoleNumber int
	Gross      int
	Tags       Tags
}

type SideBets struct {
	Greenies      bool
	Sandies       bool
	Snake         bool
	BirdiesDouble bool
	BonusSkins    bool
}

type WagerConfig struct {
	Format      Format
	WagerAmount Money
	TeamMode    TeamMode
	SideBets    SideBets
	TrashValue  Money
}

type Press struct {
	ID            string
	StartHole     int
	PressedByTeam Team
}

type Match struct {
	ID        string
	CourseID  string
	Config    WagerConfig
	Status    MatchStatus
	Players   []Player
	CreatedAt time.Time
	UpdatedAt time.Time
}
