package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/db"
	"github.com/crewplanhq/crewplan/internal/domain"
)

// assignmentColumns is the canonical SELECT column list for assignments.
const assignmentColumns = `id, project_id, team_id, phase, phase_order, tier, headcount,
		hours_override, estimate_hours, ready_date, start_date, end_date, created_at, updated_at`

// assignmentColumnsAliased is the same column list prefixed with "a." for join queries.
const assignmentColumnsAliased = `a.id, a.project_id, a.team_id, a.phase, a.phase_order, a.tier, a.headcount,
		a.hours_override, a.estimate_hours, a.ready_date, a.start_date, a.end_date, a.created_at, a.updated_at`

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(db db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: db}
}

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (id, project_id, team_id, phase, phase_order, tier, headcount,
		hours_override, estimate_hours, ready_date, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ProjectID,
		a.TeamID,
		a.Phase,
		a.PhaseOrder,
		a.Tier,
		a.Headcount,
		a.HoursOverride,
		a.EstimateHours,
		nullableTimeToString(a.ReadyDate, dateLayout),
		nullableTimeToString(a.StartDate, dateLayout),
		nullableTimeToString(a.EndDate, dateLayout),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`
	return r.scanAssignment(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteAssignmentRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE project_id = ?
		ORDER BY phase_order, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments by project: %w", err)
	}
	defer rows.Close()
	return r.scanAssignments(rows)
}

func (r *SQLiteAssignmentRepo) ListAll(ctx context.Context) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()
	return r.scanAssignments(rows)
}

// ListSchedulable returns assignments of active projects joined with project
// context, in a fixed order so snapshots assembled from it are reproducible.
func (r *SQLiteAssignmentRepo) ListSchedulable(ctx context.Context) ([]SchedulableAssignment, error) {
	query := `SELECT ` + assignmentColumnsAliased + `, p.name, p.priority, p.status
		FROM assignments a
		JOIN projects p ON a.project_id = p.id
		WHERE p.status = 'active'
		ORDER BY a.created_at, a.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedulable assignments: %w", err)
	}
	defer rows.Close()

	var out []SchedulableAssignment
	for rows.Next() {
		var sa SchedulableAssignment
		var status string
		if err := r.scanAssignmentInto(rows, &sa.Assignment, &sa.ProjectName, &sa.ProjectPriority, &status); err != nil {
			return nil, err
		}
		sa.ProjectStatus = domain.ProjectStatus(status)
		out = append(out, sa)
	}
	return out, rows.Err()
}

func (r *SQLiteAssignmentRepo) Update(ctx context.Context, a *domain.Assignment) error {
	query := `UPDATE assignments SET project_id = ?, team_id = ?, phase = ?, phase_order = ?, tier = ?,
		headcount = ?, hours_override = ?, estimate_hours = ?, ready_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.ProjectID,
		a.TeamID,
		a.Phase,
		a.PhaseOrder,
		a.Tier,
		a.Headcount,
		a.HoursOverride,
		a.EstimateHours,
		nullableTimeToString(a.ReadyDate, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating assignment: %w", err)
	}
	return requireOneRow(res, "assignment", a.ID)
}

// UpdateComputedDates records a run's output on one assignment. Nil dates
// clear a previously stored window (the item became unschedulable).
func (r *SQLiteAssignmentRepo) UpdateComputedDates(ctx context.Context, id string, start, end *time.Time) error {
	query := `UPDATE assignments SET start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(start, dateLayout),
		nullableTimeToString(end, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating computed dates: %w", err)
	}
	return requireOneRow(res, "assignment", id)
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	return requireOneRow(res, "assignment", id)
}

func (r *SQLiteAssignmentRepo) scanAssignment(row rowScanner) (*domain.Assignment, error) {
	var a domain.Assignment
	if err := r.scanAssignmentInto(row, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SQLiteAssignmentRepo) scanAssignments(rows *sql.Rows) ([]*domain.Assignment, error) {
	var out []*domain.Assignment
	for rows.Next() {
		a, err := r.scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// scanAssignmentInto scans the canonical columns plus any extra join columns.
func (r *SQLiteAssignmentRepo) scanAssignmentInto(row rowScanner, a *domain.Assignment, extra ...any) error {
	var readyDate, startDate, endDate sql.NullString
	var createdAt, updatedAt string
	dest := []any{
		&a.ID, &a.ProjectID, &a.TeamID, &a.Phase, &a.PhaseOrder, &a.Tier, &a.Headcount,
		&a.HoursOverride, &a.EstimateHours, &readyDate, &startDate, &endDate, &createdAt, &updatedAt,
	}
	dest = append(dest, extra...)
	err := row.Scan(dest...)
	if err == sql.ErrNoRows {
		return fmt.Errorf("assignment not found")
	}
	if err != nil {
		return fmt.Errorf("scanning assignment: %w", err)
	}
	a.ReadyDate = parseNullableTime(readyDate, dateLayout)
	a.StartDate = parseNullableTime(startDate, dateLayout)
	a.EndDate = parseNullableTime(endDate, dateLayout)
	a.CreatedAt = parseTime(createdAt, time.RFC3339)
	a.UpdatedAt = parseTime(updatedAt, time.RFC3339)
	return nil
}
