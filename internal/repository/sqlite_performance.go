package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lexiplay/internal/db"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/google/uuid"
)

// SQLitePerformanceRepo implements PerformanceRepo on level_performance_records.
type SQLitePerformanceRepo struct {
	db db.DBTX
}

func NewSQLitePerformanceRepo(conn db.DBTX) *SQLitePerformanceRepo {
	return &SQLitePerformanceRepo{db: conn}
}

const performanceColumns = `id, module_id, level_number, correct_count, total_questions,
	accuracy, passed, reattempt_count, error_counts, completed_at`

func (r *SQLitePerformanceRepo) Append(ctx context.Context, rec *domain.TeacherLevelPerformanceRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	errorCounts, err := json.Marshal(nonNilErrorCounts(rec.ErrorCounts))
	if err != nil {
		return fmt.Errorf("encoding error counts: %w", err)
	}
	query := `INSERT INTO level_performance_records (` + performanceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.ModuleID),
		rec.LevelNumber,
		rec.CorrectCount,
		rec.TotalQuestions,
		rec.Accuracy,
		boolToInt(rec.Passed),
		rec.ReattemptCount,
		string(errorCounts),
		rec.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting performance record: %w", err)
	}
	return nil
}

func (r *SQLitePerformanceRepo) GetByID(ctx context.Context, id string) (*domain.TeacherLevelPerformanceRecord, error) {
	query := `SELECT ` + performanceColumns + ` FROM level_performance_records WHERE id = ?`
	rec, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("performance record: %w", ErrNotFound)
	}
	return rec, err
}

func (r *SQLitePerformanceRepo) ListByModule(ctx context.Context, moduleID domain.ModuleID) ([]*domain.TeacherLevelPerformanceRecord, error) {
	query := `SELECT ` + performanceColumns + ` FROM level_performance_records
		WHERE module_id = ? ORDER BY completed_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, string(moduleID))
	if err != nil {
		return nil, fmt.Errorf("listing performance by module: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLitePerformanceRepo) ListRecent(ctx context.Context, days int) ([]*domain.TeacherLevelPerformanceRecord, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	query := `SELECT ` + performanceColumns + ` FROM level_performance_records
		WHERE completed_at >= ? ORDER BY completed_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("listing recent performance: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLitePerformanceRepo) scanRecord(row rowScanner) (*domain.TeacherLevelPerformanceRecord, error) {
	var (
		rec         domain.TeacherLevelPerformanceRecord
		moduleID    string
		passed      int
		errorCounts string
		completedAt string
	)
	err := row.Scan(
		&rec.ID, &moduleID, &rec.LevelNumber, &rec.CorrectCount, &rec.TotalQuestions,
		&rec.Accuracy, &passed, &rec.ReattemptCount, &errorCounts, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.ModuleID = domain.ModuleID(moduleID)
	rec.Passed = intToBool(passed)
	rec.ErrorCounts = make(map[domain.CurriculumErrorType]int)
	if err := json.Unmarshal([]byte(errorCounts), &rec.ErrorCounts); err != nil {
		return nil, fmt.Errorf("decoding error counts of %s: %w", rec.ID, err)
	}
	rec.CompletedAt, err = time.Parse(time.RFC3339, completedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing completed_at of %s: %w", rec.ID, err)
	}
	return &rec, nil
}

func (r *SQLitePerformanceRepo) scanRecords(rows *sql.Rows) ([]*domain.TeacherLevelPerformanceRecord, error) {
	var out []*domain.TeacherLevelPerformanceRecord
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning performance record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nonNilErrorCounts(m map[domain.CurriculumErrorType]int) map[domain.CurriculumErrorType]int {
	if m == nil {
		return map[domain.CurriculumErrorType]int{}
	}
	return m
}
