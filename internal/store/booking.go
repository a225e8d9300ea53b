package store

import (
	"context"
	"errors"
	"fmt"

	"classbook/internal/database"
	"classbook/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// maxAdmissionRetries 交易序列化衝突的重試上限，不向呼叫端暴露
const maxAdmissionRetries = 3

// CreateBooking 在單一交易內完成 count-then-insert 的入場判定。
// 以 SELECT ... FOR UPDATE 鎖住場次列，同一場次的併發預約因此被線性化；
// 不同場次互不影響。序列化衝突 (40001/40P01) 在內部重試。
func CreateBooking(ctx context.Context, db database.DB, userID, classID int) (*model.Booking, error) {
	var (
		b   *model.Booking
		err error
	)
	for attempt := 0; attempt < maxAdmissionRetries; attempt++ {
		b, err = createBookingTx(ctx, db, userID, classID)
		if err == nil || !isSerializationFailure(err) {
			return b, err
		}
	}
	return nil, err
}

func createBookingTx(ctx context.Context, db database.DB, userID, classID int) (*model.Booking, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}
	defer tx.Rollback(ctx)

	var capacity int
	err = tx.QueryRow(ctx,
		`SELECT capacity FROM class_sessions WHERE id = $1 FOR UPDATE`,
		classID,
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("CreateBooking: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}

	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE class_id = $1`,
		classID,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}

	if count >= capacity {
		return nil, fmt.Errorf("CreateBooking: %w", ErrClassFull)
	}

	b := &model.Booking{UserID: userID, ClassID: classID}
	err = tx.QueryRow(ctx,
		`INSERT INTO bookings (user_id, class_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		userID, classID,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}
	return b, nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

func CountBookingsForClass(ctx context.Context, db database.DB, classID int) (int, error) {
	var count int
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE class_id = $1`,
		classID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountBookingsForClass: %w", err)
	}
	return count, nil
}

func ListBookingsForUser(ctx context.Context, db database.DB, userID, skip, limit int) ([]model.Booking, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, class_id, created_at
		 FROM bookings
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 OFFSET $2 LIMIT $3`,
		userID, skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBookingsForUser: %w", err)
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ClassID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListBookingsForUser: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBookingsForUser: %w", err)
	}
	return out, nil
}
