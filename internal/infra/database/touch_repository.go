package database

import (
	"context"
	"database/sql"

	"github.com/weihan-tan/touchpoint/internal/entity"
)

type TouchRepository struct {
	DB *sql.DB
}

func NewTouchRepository(db *sql.DB) *TouchRepository {
	return &TouchRepository{DB: db}
}

func (r *TouchRepository) FindByProspect(ctx context.Context, prospectID string) ([]entity.Touch, error) {
	query := `
		SELECT id, prospect_id, touch_index, name, due, status
		FROM touches
		WHERE prospect_id = $1
		ORDER BY touch_index ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, prospectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	touches := []entity.Touch{}
	for rows.Next() {
		var t entity.Touch
		if err := rows.Scan(&t.ID, &t.ProspectID, &t.Index, &t.Name, &t.Due, &t.Status); err != nil {
			return nil, err
		}
		touches = append(touches, t)
	}

	return touches, rows.Err()
}

func (r *TouchRepository) CreateMany(ctx context.Context, touches []entity.Touch) error {
	if len(touches) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO touches (id, prospect_id, touch_index, name, due, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, t := range touches {
		if _, err := tx.ExecContext(ctx, query, t.ID, t.ProspectID, t.Index, t.Name, t.Due, t.Status); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// ReplaceForProspect swaps the whole sequence in one transaction.
func (r *TouchRepository) ReplaceForProspect(ctx context.Context, prospectID string, touches []entity.Touch) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM touches WHERE prospect_id = $1`, prospectID); err != nil {
		tx.Rollback()
		return err
	}

	query := `
		INSERT INTO touches (id, prospect_id, touch_index, name, due, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, t := range touches {
		if _, err := tx.ExecContext(ctx, query, t.ID, prospectID, t.Index, t.Name, t.Due, t.Status); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r *TouchRepository) DeleteByProspect(ctx context.Context, prospectID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM touches WHERE prospect_id = $1`, prospectID)
	return err
}

func (r *TouchRepository) UpdateStatus(ctx context.Context, prospectID, touchID, status string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE touches SET status = $3 WHERE prospect_id = $1 AND id = $2`,
		prospectID, touchID, status,
	)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrTouchNotFound
	}

	return nil
}
