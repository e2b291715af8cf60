package db

import (
	"context"
	"time"
)

const insertMatch = `
INSERT INTO matches (
    id, course_id, format, wager_amount, team_mode,
    greenies, sandies, snake, birdies_double, bonus_skins,
    trash_value, status, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type InsertMatchParams struct {
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

func (q *Queries) InsertMatch(ctx context.Context, arg InsertMatchParams) error {
	_, err := q.db.ExecContext(ctx, insertMatch,
		arg.ID,
		arg.CourseID,
		arg.Format,
		arg.WagerAmount,
		arg.TeamMode,
		arg.Greenies,
		arg.Sandies,
		arg.Snake,
		arg.BirdiesDouble,
		arg.BonusSkins,
		arg.TrashValue,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getMatch = `
SELECT id, course_id, format, wager_amount, team_mode,
       greenies, sandies, snake, birdies_double, bonus_skins,
       trash_value, status, created_at, updated_at
FROM matches
WHERE id = ?
`

func (q *Queries) GetMatch(ctx context.Context, id string) (Match, error) {
	row := q.db.QueryRowContext(ctx, getMatch, id)
	var i Match
	err := row.Scan(
		&i.ID,
		&i.CourseID,
		&i.Format,
		&i.WagerAmount,
		&i.TeamMode,
		&i.Greenies,
		&i.Sandies,
		&i.Snake,
		&i.BirdiesDouble,
		&i.BonusSkins,
		&i.TrashValue,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateMatchStatus = `
UPDATE matches SET status = ?, updated_at = ? WHERE id = ?
`

type UpdateMatchStatusParams struct {
	Status    string
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateMatchStatus(ctx context.Context, arg UpdateMatchStatusParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateMatchStatus, arg.Status, arg.UpdatedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const touchMatch = `
UPDATE matches SET updated_at = ? WHERE id = ?
`

func (q *Queries) TouchMatch(ctx context.Context, updatedAt time.Time, id string) error {
	_, err := q.db.ExecContext(ctx, touchMatch, updatedAt, id)
	return err
}

const insertMatchPlayer = `
INSERT INTO match_players (match_id, player_id, display_name, handicap_index, team, is_guest, position)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type InsertMatchPlayerParams struct {
	MatchID       string
	PlayerID      string
	DisplayName   string
	HandicapIndex *float64
	Team          string
	IsGuest       bool
	Position      int64
}

func (q *Queries) InsertMatchPlayer(ctx context.Context, arg InsertMatchPlayerParams) error {
	_, err := q.db.ExecContext(ctx, insertMatchPlayer,
		arg.MatchID,
		arg.PlayerID,
		arg.DisplayName,
		arg.HandicapIndex,
		arg.Team,
		arg.IsGuest,
		arg.Position,
	)
	return err
}

const listMatchPlayers = `
SELECT match_id, player_id, display_name, handicap_index, team, is_guest, position
FROM match_players
WHERE match_id = ?
ORDER BY position
`

func (q *Queries) ListMatchPlayers(ctx context.Context, matchID string) ([]MatchPlayer, error) {
	rows, err := q.db.QueryContext(ctx, listMatchPlayers, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MatchPlayer
	for rows.Next() {
		var i MatchPlayer
		if err := rows.Scan(
			&i.MatchID,
			&i.PlayerID,
			&i.DisplayName,
			&i.HandicapIndex,
			&i.Team,
			&i.IsGuest,
			&i.Position,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listMatchIDsByStatus = `
SELECT id FROM matches WHERE status = ? ORDER BY created_at, id
`

func (q *Queries) ListMatchIDsByStatus(ctx context.Context, status string) ([]string, error) {
	return q.listIDs(ctx, listMatchIDsByStatus, status)
}

const listMatchIDsByPlayer = `
SELECT m.id
FROM matches m
JOIN match_players mp ON mp.match_id = m.id
WHERE mp.player_id = ?
ORDER BY m.created_at, m.id
`

func (q *Queries) ListMatchIDsByPlayer(ctx context.Context, playerID string) ([]string, error) {
	return q.listIDs(ctx, listMatchIDsByPlayer, playerID)
}

func (q *Queries) listIDs(ctx context.Context, query string, arg string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
