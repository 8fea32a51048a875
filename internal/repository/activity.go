package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
)

const activityColumns = `a.id, a.title, a.description, a.userid, a.created_at, a.updated_at,
	u.id, u.name, u.email, u.created_at, u.updated_at`

type ActivityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewActivityRepo(db *dbpg.DB) *ActivityRepository {
	return &ActivityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (title, description, userid)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	err := r.db.Master.QueryRowContext(ctx, query, a.Title, a.Description, a.UserID).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}

	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + `
			  FROM activities a
			  JOIN users u ON u.id = a.userid
			  WHERE a.id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	a, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}

	return a, nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + `
			  FROM activities a
			  JOIN users u ON u.id = a.userid
			  ORDER BY a.id ASC`

	return r.queryActivities(ctx, query)
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + `
			  FROM activities a
			  JOIN users u ON u.id = a.userid
			  WHERE a.userid=$1
			  ORDER BY a.id ASC`

	return r.queryActivities(ctx, query, userID)
}

func (r *ActivityRepository) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities
			  SET title = $2, description = $3, userid = $4, updated_at = NOW()
			  WHERE id = $1
			  RETURNING updated_at`

	err := r.db.Master.QueryRowContext(ctx, query, a.ID, a.Title, a.Description, a.UserID).
		Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrActivityNotFound
		}
		return fmt.Errorf("update activity: %w", err)
	}

	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM activities WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete activity rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrActivityNotFound
	}

	return nil
}

func (r *ActivityRepository) queryActivities(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var res []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var u domain.User
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.UserID, &a.CreatedAt, &a.UpdatedAt,
		&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}
	a.User = &u
	return &a, nil
}
