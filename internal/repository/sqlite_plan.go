package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/db"
)

const savedPlanColumns = `id, label, fingerprint, payload, created_at`

// SQLitePlanRepo implements PlanRepo using a SQLite database. Saving under an
// existing label replaces the previous snapshot.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, p *SavedPlan) error {
	query := `INSERT INTO saved_plans (id, label, fingerprint, payload, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(label) DO UPDATE SET fingerprint = excluded.fingerprint,
			payload = excluded.payload, created_at = excluded.created_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Label,
		p.Fingerprint,
		p.Payload,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByLabel(ctx context.Context, label string) (*SavedPlan, error) {
	query := `SELECT ` + savedPlanColumns + ` FROM saved_plans WHERE label = ?`
	var p SavedPlan
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, label).Scan(&p.ID, &p.Label, &p.Fingerprint, &p.Payload, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("saved plan not found: %s", label)
	}
	if err != nil {
		return nil, fmt.Errorf("loading saved plan: %w", err)
	}
	p.CreatedAt = parseTime(createdAt, time.RFC3339)
	return &p, nil
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*SavedPlan, error) {
	query := `SELECT ` + savedPlanColumns + ` FROM saved_plans ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing saved plans: %w", err)
	}
	defer rows.Close()

	var plans []*SavedPlan
	for rows.Next() {
		var p SavedPlan
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Label, &p.Fingerprint, &p.Payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning saved plan: %w", err)
		}
		p.CreatedAt = parseTime(createdAt, time.RFC3339)
		plans = append(plans, &p)
	}
	return plans, rows.Err()
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, label string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_plans WHERE label = ?`, label)
	if err != nil {
		return fmt.Errorf("deleting saved plan: %w", err)
	}
	return requireOneRow(res, "saved plan", label)
}
