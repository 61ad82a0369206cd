package kvstore_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/lexiplay/internal/domain"
	"github.com/alexanderramin/lexiplay/internal/kvstore"
	"github.com/alexanderramin/lexiplay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// stores runs fn against every Store implementation.
func stores(t *testing.T, fn func(t *testing.T, s kvstore.Store)) {
	t.Run("memory", func(t *testing.T) { fn(t, kvstore.NewMemoryStore()) })
	t.Run("sqlite", func(t *testing.T) { fn(t, kvstore.NewSQLiteStore(testutil.NewTestDB(t))) })
}

func TestStore_GetMissing(t *testing.T) {
	stores(t, func(t *testing.T, s kvstore.Store) {
		v, err := s.Get(context.Background(), "absent")
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestStore_SetGetRemove(t *testing.T) {
	stores(t, func(t *testing.T, s kvstore.Store) {
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "k", []byte("one")))
		require.NoError(t, s.Set(ctx, "k", []byte("two")))

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), v)

		require.NoError(t, s.Remove(ctx, "k"))
		v, err = s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Nil(t, v)

		assert.NoError(t, s.Remove(ctx, "never-set"))
	})
}

func TestJSON_RoundTrip(t *testing.T) {
	stores(t, func(t *testing.T, s kvstore.Store) {
		ctx := context.Background()
		require.NoError(t, kvstore.SetJSON(ctx, s, "p", payload{Name: "owl", Count: 3}))

		var got payload
		found, err := kvstore.GetJSON(ctx, s, "p", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, payload{Name: "owl", Count: 3}, got)
	})
}

func TestGetJSON_MissingKey(t *testing.T) {
	var got payload
	found, err := kvstore.GetJSON(context.Background(), kvstore.NewMemoryStore(), "nothing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSON_CorruptValueIsCleared(t *testing.T) {
	cases := map[string]string{
		"truncated":   `{"name":"owl",`,
		"not json":    `hello`,
		"array":       `[1,2,3]`,
		"wrong shape": `{"name":5}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			stores(t, func(t *testing.T, s kvstore.Store) {
				ctx := context.Background()
				require.NoError(t, s.Set(ctx, "bad", []byte(raw)))

				var got payload
				found, err := kvstore.GetJSON(ctx, s, "bad", &got)
				assert.ErrorIs(t, err, kvstore.ErrCorrupt)
				assert.False(t, found)

				v, err := s.Get(ctx, "bad")
				require.NoError(t, err)
				assert.Nil(t, v, "corrupt key should be removed")
			})
		})
	}
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "lexiplay:level-session:sentence_builder:3", kvstore.SessionKey(domain.ModuleSentenceBuilder, 3))
}
