package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/crewplanhq/crewplan/internal/db"
	"github.com/crewplanhq/crewplan/internal/domain"
)

// teamColumns is the canonical SELECT column list for teams.
const teamColumns = `id, name, total_headcount, busy_headcount, tier_hours, created_at, updated_at`

// SQLiteTeamRepo implements TeamRepo using a SQLite database.
type SQLiteTeamRepo struct {
	db db.DBTX
}

// NewSQLiteTeamRepo creates a new SQLiteTeamRepo.
func NewSQLiteTeamRepo(db db.DBTX) *SQLiteTeamRepo {
	return &SQLiteTeamRepo{db: db}
}

func (r *SQLiteTeamRepo) Create(ctx context.Context, t *domain.Team) error {
	tierJSON, err := encodeTierHours(t.TierHours)
	if err != nil {
		return err
	}
	query := `INSERT INTO teams (id, name, total_headcount, busy_headcount, tier_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.TotalHeadcount,
		t.BusyHeadcount,
		tierJSON,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = ?`
	return r.scanTeam(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTeamRepo) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE name = ?`
	return r.scanTeam(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteTeamRepo) List(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		t, err := r.scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *SQLiteTeamRepo) Update(ctx context.Context, t *domain.Team) error {
	tierJSON, err := encodeTierHours(t.TierHours)
	if err != nil {
		return err
	}
	query := `UPDATE teams SET name = ?, total_headcount = ?, busy_headcount = ?, tier_hours = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.TotalHeadcount,
		t.BusyHeadcount,
		tierJSON,
		time.Now().UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating team: %w", err)
	}
	return requireOneRow(res, "team", t.ID)
}

func (r *SQLiteTeamRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	return requireOneRow(res, "team", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTeamRepo) scanTeam(row rowScanner) (*domain.Team, error) {
	var t domain.Team
	var tierJSON, createdAt, updatedAt string
	err := row.Scan(&t.ID, &t.Name, &t.TotalHeadcount, &t.BusyHeadcount, &tierJSON, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning team: %w", err)
	}
	t.TierHours, err = decodeTierHours(tierJSON)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = parseTime(createdAt, time.RFC3339)
	t.UpdatedAt = parseTime(updatedAt, time.RFC3339)
	return &t, nil
}

// Tier keys are stored as JSON object keys, which are strings; encode/decode
// converts to the domain's int-keyed map.
func encodeTierHours(tiers map[int]float64) (string, error) {
	m := make(map[string]float64, len(tiers))
	for k, v := range tiers {
		m[strconv.Itoa(k)] = v
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding tier hours: %w", err)
	}
	return string(data), nil
}

func decodeTierHours(encoded string) (map[int]float64, error) {
	if encoded == "" {
		return nil, nil
	}
	var m map[string]float64
	if err := json.Unmarshal([]byte(encoded), &m); err != nil {
		return nil, fmt.Errorf("decoding tier hours: %w", err)
	}
	if len(m) == 0 {
		return nil, nil
	}
	tiers := make(map[int]float64, len(m))
	for k, v := range m {
		tier, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("decoding tier hours: bad tier key %q", k)
		}
		tiers[tier] = v
	}
	return tiers, nil
}

func requireOneRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
