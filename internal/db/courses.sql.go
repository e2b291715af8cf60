package db

import (
	"context"
	"time"
)

const upsertCourse = `
INSERT INTO courses (id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    updated_at = excluded.updated_at
`

type UpsertCourseParams struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) UpsertCourse(ctx context.Context, arg UpsertCourseParams) error {
	_, err := q.db.ExecContext(ctx, upsertCourse,
		arg.ID,
		arg.Name,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getCourse = `
SELECT id, name, created_at, updated_at FROM courses WHERE id = ?
`

func (q *Queries) GetCourse(ctx context.Context, id string) (Course, error) {
	row := q.db.QueryRowContext(ctx, getCourse, id)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteCourseHoles = `
DELETE FROM course_holes WHERE course_id = ?
`

func (q *Queries) DeleteCourseHoles(ctx context.Context, courseID string) error {
	_, err := q.db.ExecContext(ctx, deleteCourseHoles, courseID)
	return err
}

const insertCourseHole = `
INSERT INTO course_holes (course_id, number, par, stroke_index)
VALUES (?, ?, ?, ?)
`

type InsertCourseHoleParams struct {
	CourseID    string
	Number      int64
	Par         int64
	StrokeIndex int64
}

func (q *Queries) InsertCourseHole(ctx context.Context, arg InsertCourseHoleParams) error {
	_, err := q.db.ExecContext(ctx, insertCourseHole,
		arg.CourseID,
		arg.Number,
		arg.Par,
		arg.StrokeIndex,
	)
	return err
}

const listCourseHoles = `
SELECT course_id, number, par, stroke_index
FROM course_holes
WHERE course_id = ?
ORDER BY number
`

func (q *Queries) ListCourseHoles(ctx context.Context, courseID string) ([]CourseHole, error) {
	rows, err := q.db.QueryContext(ctx, listCourseHoles, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CourseHole
	for rows.Next() {
		var i CourseHole
		if err := rows.Scan(
			&i.CourseID,
			&i.Number,
			&i.Par,
			&i.StrokeIndex,
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
