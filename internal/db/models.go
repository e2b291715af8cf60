package db

import (
	"time"
)

type Course struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourseHole struct {
	CourseID    string
	Number      int64
	Par         int64
	StrokeIndex int64
}

type Match struct {
	ID            string
	CourseID      string
	Format        string
	WagerAmount   int64
	TeamMode      string
	Greenies      bool
	Sandies       bool
	Snake         bool
	BirdiesDouble bool
	BonusSkins    bool
	TrashValue    int64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MatchPlayer struct {
	MatchID       string
	PlayerID      string
	DisplayName   string
	HandicapIndex *float64
	Team          string
	IsGuest       bool
	Position      int64
}

type HoleScore struct {
	ID         string
	MatchID    string
	PlayerID   string
	HoleNumber int64
	Gross      int64
	Tags       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Press struct {
	ID            string
	MatchID       string
	StartHole     int64
	PressedByTeam string
	CreatedAt     time.Time
}
