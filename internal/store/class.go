package store

import (
	"context"
	"errors"
	"fmt"

	"classbook/internal/database"
	"classbook/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateClass(ctx context.Context, db database.DB, cs *model.ClassSession) (*model.ClassSession, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO class_sessions (title, description, date, start_time, end_time, capacity)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		cs.Title,
		cs.Description,
		cs.Date,
		cs.StartTime,
		cs.EndTime,
		cs.Capacity,
	)
	if err := row.Scan(&cs.ID, &cs.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateClass: %w", err)
	}
	return cs, nil
}

func GetClassByID(ctx context.Context, db database.DB, classID int) (*model.ClassSession, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, date, start_time, end_time, capacity, created_at
		 FROM class_sessions WHERE id = $1`,
		classID,
	)
	cs := &model.ClassSession{}
	if err := row.Scan(
		&cs.ID,
		&cs.Title,
		&cs.Description,
		&cs.Date,
		&cs.StartTime,
		&cs.EndTime,
		&cs.Capacity,
		&cs.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetClassByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetClassByID: %w", err)
	}
	return cs, nil
}

// ListClasses 依建立時間排序分頁列出場次，booked_count 以 COUNT 子查詢計算
func ListClasses(ctx context.Context, db database.DB, skip, limit int) ([]model.ClassSummary, error) {
	rows, err := db.Query(ctx,
		`SELECT c.id, c.title, c.description, c.date, c.start_time, c.end_time, c.capacity, c.created_at,
		        (SELECT COUNT(*) FROM bookings b WHERE b.class_id = c.id) AS booked_count
		 FROM class_sessions c
		 ORDER BY c.created_at, c.id
		 OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListClasses: %w", err)
	}
	defer rows.Close()

	out := []model.ClassSummary{}
	for rows.Next() {
		var cs model.ClassSummary
		if err := rows.Scan(
			&cs.ID,
			&cs.Title,
			&cs.Description,
			&cs.Date,
			&cs.StartTime,
			&cs.EndTime,
			&cs.Capacity,
			&cs.CreatedAt,
			&cs.BookedCount,
		); err != nil {
			return nil, fmt.Errorf("ListClasses: %w", err)
		}
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListClasses: %w", err)
	}
	return out, nil
}
