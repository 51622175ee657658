// Package sweepdb records parameter sweep runs in a local sqlite database
// so sweeps can be compared across invocations.
package sweepdb

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/motion.report/internal/monitoring"
	"github.com/banshee-data/motion.report/internal/motion"
)

type SweepDB struct {
	*sql.DB
}

// schema.sql defines the sweep_runs table holding one row per assembled
// profile with its full parameter set and summary stats.
//
//go:embed schema.sql
var schemaSQL string

func NewSweepDB(path string) (*SweepDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(schemaSQL)
	if err != nil {
		return nil, err
	}

	monitoring.Logf("initialized sweep database schema")

	return &SweepDB{db}, nil
}

// RunRecord is one stored sweep run.
type RunRecord struct {
	ID         string
	CreatedAt  float64
	SweptParam string

	Params      motion.Params
	AdvanceMode motion.AdvanceMode

	Samples      int
	Duration     float64
	PeakVelocity float64
	PeakAccel    float64
	MinAccel     float64
}

// RecordRun stores one parameter set plus the summary of its effective
// profile. Returns the generated run ID.
func (sdb *SweepDB) RecordRun(sweptParam string, params motion.Params, mode motion.AdvanceMode, summary motion.Summary) (string, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO sweep_runs (
			id, swept_param,
			trajectory, distance, rate, accel, accel_overshoot,
			advance_mode, advance_k, line_width, layer_height,
			sample_rate, smooth_time, smooth_order,
			samples, duration_s, peak_velocity, peak_accel, min_accel
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := sdb.Exec(query,
		id, sweptParam,
		params.Trajectory.String(), params.Distance, params.Rate, params.Accel, params.AccelOvershoot,
		mode.String(), params.AdvanceK, params.LineWidth, params.LayerHeight,
		params.SampleRate, params.SmoothTime, params.SmoothOrder,
		summary.Samples, summary.Duration, summary.Velocity.Max, summary.Acceleration.Max, summary.Acceleration.Min,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert sweep run: %w", err)
	}

	return id, nil
}

func scanRun(rows *sql.Rows) (RunRecord, error) {
	var rec RunRecord
	var trajectory, advanceMode string

	err := rows.Scan(
		&rec.ID, &rec.CreatedAt, &rec.SweptParam,
		&trajectory, &rec.Params.Distance, &rec.Params.Rate, &rec.Params.Accel, &rec.Params.AccelOvershoot,
		&advanceMode, &rec.Params.AdvanceK, &rec.Params.LineWidth, &rec.Params.LayerHeight,
		&rec.Params.SampleRate, &rec.Params.SmoothTime, &rec.Params.SmoothOrder,
		&rec.Samples, &rec.Duration, &rec.PeakVelocity, &rec.PeakAccel, &rec.MinAccel,
	)
	if err != nil {
		return rec, err
	}

	if rec.Params.Trajectory, err = motion.ParseTrajectoryKind(trajectory); err != nil {
		return rec, fmt.Errorf("stored run %s: %w", rec.ID, err)
	}
	if rec.AdvanceMode, err = motion.ParseAdvanceMode(advanceMode); err != nil {
		return rec, fmt.Errorf("stored run %s: %w", rec.ID, err)
	}

	return rec, nil
}

const runColumns = `
	id, created_at, swept_param,
	trajectory, distance, rate, accel, accel_overshoot,
	advance_mode, advance_k, line_width, layer_height,
	sample_rate, smooth_time, smooth_order,
	samples, duration_s, peak_velocity, peak_accel, min_accel
`

// ListRuns returns the most recent runs for one swept parameter, oldest
// first. A limit of 0 returns all of them.
func (sdb *SweepDB) ListRuns(sweptParam string, limit int) ([]RunRecord, error) {
	query := `SELECT ` + runColumns + ` FROM sweep_runs WHERE swept_param = ? ORDER BY created_at, rowid`
	args := []interface{}{sweptParam}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := sdb.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sweep runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetRun fetches one run by ID. Returns sql.ErrNoRows if absent.
func (sdb *SweepDB) GetRun(id string) (RunRecord, error) {
	rows, err := sdb.Query(`SELECT `+runColumns+` FROM sweep_runs WHERE id = ?`, id)
	if err != nil {
		return RunRecord{}, fmt.Errorf("failed to query sweep run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return RunRecord{}, err
		}
		return RunRecord{}, sql.ErrNoRows
	}
	return scanRun(rows)
}
