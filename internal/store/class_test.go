package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"classbook/internal/database"
	"classbook/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCreateClass(t *testing.T) {
	now := time.Now().UTC()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return scanRow{vals: []any{3, now}}
		},
	}
	cs, err := CreateClass(context.Background(), db, &model.ClassSession{
		Title:     "Yoga 9am",
		Date:      now,
		StartTime: "09:00",
		EndTime:   "10:00",
		Capacity:  10,
	})
	require.NoError(t, err)
	require.Equal(t, 3, cs.ID)
	require.Equal(t, now, cs.CreatedAt)

	db.QueryRowFn = func(_ context.Context, _ string, _ ...any) pgx.Row {
		return scanRow{err: errors.New("boom")}
	}
	_, err = CreateClass(context.Background(), db, &model.ClassSession{})
	require.Error(t, err)
}

func TestGetClassByID(t *testing.T) {
	now := time.Now().UTC()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return scanRow{vals: []any{1, "Yoga 9am", (*string)(nil), now, "09:00", "10:00", 10, now}}
		},
	}
	cs, err := GetClassByID(context.Background(), db, 1)
	require.NoError(t, err)
	require.Equal(t, "Yoga 9am", cs.Title)
	require.Nil(t, cs.Description)
	require.Equal(t, 10, cs.Capacity)

	db.QueryRowFn = func(_ context.Context, _ string, _ ...any) pgx.Row {
		return scanRow{err: pgx.ErrNoRows}
	}
	_, err = GetClassByID(context.Background(), db, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

type fakeClassRows struct {
	classes []model.ClassSummary
	idx     int
	scanErr error
}

func (r *fakeClassRows) Close()                                       {}
func (r *fakeClassRows) Err() error                                   { return nil }
func (r *fakeClassRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeClassRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeClassRows) Next() bool                                   { return r.idx < len(r.classes) }
func (r *fakeClassRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeClassRows) RawValues() [][]byte                          { return nil }
func (r *fakeClassRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeClassRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	cs := r.classes[r.idx]
	r.idx++
	*dest[0].(*int) = cs.ID
	*dest[1].(*string) = cs.Title
	*dest[2].(**string) = cs.Description
	*dest[3].(*time.Time) = cs.Date
	*dest[4].(*string) = cs.StartTime
	*dest[5].(*string) = cs.EndTime
	*dest[6].(*int) = cs.Capacity
	*dest[7].(*time.Time) = cs.CreatedAt
	*dest[8].(*int) = cs.BookedCount
	return nil
}

func TestListClasses(t *testing.T) {
	now := time.Now().UTC()
	desc := "Morning flow"

	t.Run("success", func(t *testing.T) {
		rows := &fakeClassRows{classes: []model.ClassSummary{
			{ClassSession: model.ClassSession{ID: 1, Title: "Yoga 9am", Description: &desc, Date: now, StartTime: "09:00", EndTime: "10:00", Capacity: 10, CreatedAt: now}, BookedCount: 3},
			{ClassSession: model.ClassSession{ID: 2, Title: "Pilates", Date: now, StartTime: "11:00", EndTime: "12:00", Capacity: 5, CreatedAt: now}, BookedCount: 5},
		}}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		out, err := ListClasses(context.Background(), db, 0, 100)
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, 3, out[0].BookedCount)
		require.Equal(t, "Pilates", out[1].Title)
	})

	t.Run("empty", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeClassRows{}, nil },
		}
		out, err := ListClasses(context.Background(), db, 0, 100)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") },
		}
		_, err := ListClasses(context.Background(), db, 0, 100)
		require.Error(t, err)
	})

	t.Run("scan error", func(t *testing.T) {
		rows := &fakeClassRows{
			classes: []model.ClassSummary{{ClassSession: model.ClassSession{ID: 1}}},
			scanErr: errors.New("scan"),
		}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		_, err := ListClasses(context.Background(), db, 0, 100)
		require.Error(t, err)
	})
}
