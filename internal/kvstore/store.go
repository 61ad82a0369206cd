// Package kvstore is the small key-value persistence layer behind level
// sessions. Values are opaque bytes; JSON helpers sit on top.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/tidwall/gjson"
)

// ErrCorrupt is returned when a stored value cannot be decoded. The key has
// already been removed when it is returned.
var ErrCorrupt = errors.New("kvstore: corrupt value")

// Store persists opaque values by key.
type Store interface {
	// Get returns nil, nil when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

const keyPrefix = "lexiplay"

// SessionKey is the key of the level session for (moduleID, level).
func SessionKey(moduleID domain.ModuleID, level int) string {
	return fmt.Sprintf("%s:level-session:%s:%d", keyPrefix, moduleID, level)
}

// GetJSON decodes the value under key into dst. found is false when the key
// is absent. Malformed JSON is removed and reported as ErrCorrupt.
func GetJSON(ctx context.Context, s Store, key string, dst any) (found bool, err error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return false, discard(ctx, s, key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, discard(ctx, s, key)
	}
	return true, nil
}

// SetJSON stores v under key as JSON.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func discard(ctx context.Context, s Store, key string) error {
	if err := s.Remove(ctx, key); err != nil {
		return fmt.Errorf("%w: removing %s: %v", ErrCorrupt, key, err)
	}
	return fmt.Errorf("%w: %s", ErrCorrupt, key)
}
