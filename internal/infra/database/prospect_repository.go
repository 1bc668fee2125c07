package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/weihan-tan/touchpoint/internal/entity"
)

type ProspectRepository struct {
	DB *sql.DB
}

func NewProspectRepository(db *sql.DB) *ProspectRepository {
	return &ProspectRepository{DB: db}
}

func (r *ProspectRepository) Create(ctx context.Context, p *entity.Prospect) error {
	query := `
		INSERT INTO prospects (id, first_name, last_name, company, email, phone, notes, first_contact, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.FirstName,
		p.LastName,
		nullString(p.Company),
		nullString(p.Email),
		nullString(p.Phone),
		nullString(p.Notes),
		p.FirstContact,
		string(p.Status),
		p.CreatedAt,
	)
	if err != nil {
		log.Printf("database: insert prospect failed: %v", err)
		return err
	}

	return nil
}

func (r *ProspectRepository) FindByID(ctx context.Context, id string) (*entity.Prospect, error) {
	query := `
		SELECT id, first_name, last_name,
		       COALESCE(company, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(notes, ''),
		       first_contact, status, created_at
		FROM prospects
		WHERE id = $1
	`

	var p entity.Prospect
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName,
		&p.Company, &p.Email, &p.Phone, &p.Notes,
		&p.FirstContact, &p.Status, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProspectNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Touches = []entity.Touch{}
	return &p, nil
}

// FindAll returns every prospect, newest first, each carrying its touches
// ordered by index.
func (r *ProspectRepository) FindAll(ctx context.Context) ([]entity.Prospect, error) {
	query := `
		SELECT id, first_name, last_name,
		       COALESCE(company, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(notes, ''),
		       first_contact, status, created_at
		FROM prospects
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prospects := []entity.Prospect{}
	byID := map[string]int{}
	for rows.Next() {
		var p entity.Prospect
		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName,
			&p.Company, &p.Email, &p.Phone, &p.Notes,
			&p.FirstContact, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.Touches = []entity.Touch{}
		byID[p.ID] = len(prospects)
		prospects = append(prospects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	touchQuery := `
		SELECT id, prospect_id, touch_index, name, due, status
		FROM touches
		ORDER BY prospect_id, touch_index ASC
	`

	touchRows, err := r.DB.QueryContext(ctx, touchQuery)
	if err != nil {
		return nil, err
	}
	defer touchRows.Close()

	for touchRows.Next() {
		var t entity.Touch
		if err := touchRows.Scan(&t.ID, &t.ProspectID, &t.Index, &t.Name, &t.Due, &t.Status); err != nil {
			return nil, err
		}
		if i, ok := byID[t.ProspectID]; ok {
			prospects[i].Touches = append(prospects[i].Touches, t)
		}
	}
	if err := touchRows.Err(); err != nil {
		return nil, err
	}

	return prospects, nil
}

func (r *ProspectRepository) Update(ctx context.Context, p *entity.Prospect) error {
	query := `
		UPDATE prospects
		SET first_name = $2, last_name = $3, company = $4, email = $5, phone = $6,
		    notes = $7, first_contact = $8, status = $9
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.FirstName,
		p.LastName,
		nullString(p.Company),
		nullString(p.Email),
		nullString(p.Phone),
		nullString(p.Notes),
		p.FirstContact,
		string(p.Status),
	)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrProspectNotFound
	}

	return nil
}

func (r *ProspectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM prospects WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrProspectNotFound
	}

	return nil
}

func (r *ProspectRepository) CountByStatus(ctx context.Context) (map[entity.Status]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM prospects GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[entity.Status]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[entity.Status(status)] = count
	}

	return counts, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
