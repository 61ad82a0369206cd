package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// LevelSessionRepo stores at most one in-progress session per module level.
type LevelSessionRepo interface {
	// Load returns nil, nil when there is no usable session: missing,
	// corrupt, stored for a different module level, or positioned outside
	// the level's questions. Unusable keys are cleared.
	Load(ctx context.Context, moduleID domain.ModuleID, level int) (*domain.StoredLevelSessionState, error)
	Save(ctx context.Context, s *domain.StoredLevelSessionState) error
	Clear(ctx context.Context, moduleID domain.ModuleID, level int) error
}

// PerformanceRepo is the append-only history of graded level attempts.
type PerformanceRepo interface {
	Append(ctx context.Context, r *domain.TeacherLevelPerformanceRecord) error
	GetByID(ctx context.Context, id string) (*domain.TeacherLevelPerformanceRecord, error)
	// ListByModule returns records oldest first.
	ListByModule(ctx context.Context, moduleID domain.ModuleID) ([]*domain.TeacherLevelPerformanceRecord, error)
	// ListRecent returns records completed in the last days days, newest first.
	ListRecent(ctx context.Context, days int) ([]*domain.TeacherLevelPerformanceRecord, error)
}
