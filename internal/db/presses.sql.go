package db

import (
	"context"
	"time"
)

const insertPress = `
INSERT INTO presses (id, match_id, start_hole, pressed_by_team, created_at)
VALUES (?, ?, ?, ?, ?)
`

type InsertPressParams struct {
	ID            string
	MatchID       string
	StartHole     int64
	PressedByTeam string
	CreatedAt     time.Time
}

func (q *Queries) InsertPress(ctx context.Context, arg InsertPressParams) error {
	_, err := q.db.ExecContext(ctx, insertPress,
		arg.ID,
		arg.MatchID,
		arg.StartHole,
		arg.PressedByTeam,
		arg.CreatedAt,
	)
	return err
}

const listPresses = `
SELECT id, match_id, start_hole, pressed_by_team, created_at
FROM presses
WHERE match_id = ?
ORDER BY start_hole, created_at, id
`

func (q *Queries) ListPresses(ctx context.Context, matchID string) ([]Press, error) {
	rows, err := q.db.QueryContext(ctx, listPresses, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Press
	for rows.Next() {
		var i Press
		if err := rows.Scan(
			&i.ID,
			&i.MatchID,
			&i.StartHole,
			&i.PressedByTeam,
			&i.CreatedAt,
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
