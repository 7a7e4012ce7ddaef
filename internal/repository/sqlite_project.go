package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/db"
	"github.com/crewplanhq/crewplan/internal/domain"
)

// projectColumns is the canonical SELECT column list for projects.
const projectColumns = `id, short_id, name, priority, status, start_hint, target_date, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, short_id, name, priority, status, start_hint, target_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ShortID,
		p.Name,
		p.Priority,
		string(p.Status),
		nullableTimeToString(p.StartHint, dateLayout),
		nullableTimeToString(p.TargetDate, dateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE short_id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, shortID))
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY priority, name`
	if !includeArchived {
		query = `SELECT ` + projectColumns + ` FROM projects WHERE status != 'archived' ORDER BY priority, name`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET short_id = ?, name = ?, priority = ?, status = ?, start_hint = ?, target_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.ShortID,
		p.Name,
		p.Priority,
		string(p.Status),
		nullableTimeToString(p.StartHint, dateLayout),
		nullableTimeToString(p.TargetDate, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return requireOneRow(res, "project", p.ID)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireOneRow(res, "project", id)
}

func (r *SQLiteProjectRepo) scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var shortID, startHint, targetDate sql.NullString
	var status, createdAt, updatedAt string
	err := row.Scan(&p.ID, &shortID, &p.Name, &p.Priority, &status, &startHint, &targetDate, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.ShortID = shortID.String
	p.Status = domain.ProjectStatus(status)
	p.StartHint = parseNullableTime(startHint, dateLayout)
	p.TargetDate = parseNullableTime(targetDate, dateLayout)
	p.CreatedAt = parseTime(createdAt, time.RFC3339)
	p.UpdatedAt = parseTime(updatedAt, time.RFC3339)
	return &p, nil
}
