package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/lexiplay/internal/curriculum"
	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/kvstore"
)

// KVLevelSessionRepo implements LevelSessionRepo as JSON documents in a
// key-value store, one key per module level.
type KVLevelSessionRepo struct {
	store kvstore.Store
}

func NewKVLevelSessionRepo(store kvstore.Store) *KVLevelSessionRepo {
	return &KVLevelSessionRepo{store: store}
}

func (r *KVLevelSessionRepo) Load(ctx context.Context, moduleID domain.ModuleID, level int) (*domain.StoredLevelSessionState, error) {
	var s domain.StoredLevelSessionState
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.SessionKey(moduleID, level), &s)
	if errors.Is(err, kvstore.ErrCorrupt) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading level session: %w", err)
	}
	if !found {
		return nil, nil
	}
	if s.ModuleID != moduleID || s.LevelNumber != level || !inBounds(&s) {
		if err := r.Clear(ctx, moduleID, level); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if s.ResultsByQuestionNumber == nil {
		s.ResultsByQuestionNumber = make(map[int]domain.TeacherLevelQuestionResult)
	}
	return &s, nil
}

// inBounds reports whether a decoded session can be resumed without
// indexing outside the level's questions.
func inBounds(s *domain.StoredLevelSessionState) bool {
	if s.QuestionIndex < 0 || s.QuestionIndex >= curriculum.QuestionsPerLevel {
		return false
	}
	if s.ReattemptCount < 0 {
		return false
	}
	for n := range s.ResultsByQuestionNumber {
		if n < 1 || n > curriculum.QuestionsPerLevel {
			return false
		}
	}
	return true
}

func (r *KVLevelSessionRepo) Save(ctx context.Context, s *domain.StoredLevelSessionState) error {
	if err := kvstore.SetJSON(ctx, r.store, kvstore.SessionKey(s.ModuleID, s.LevelNumber), s); err != nil {
		return fmt.Errorf("saving level session: %w", err)
	}
	return nil
}

func (r *KVLevelSessionRepo) Clear(ctx context.Context, moduleID domain.ModuleID, level int) error {
	if err := r.store.Remove(ctx, kvstore.SessionKey(moduleID, level)); err != nil {
		return fmt.Errorf("clearing level session: %w", err)
	}
	return nil
}
