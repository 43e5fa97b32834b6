package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filipedpsilva/counter/errs"
)

func TestCacheStore(t *testing.T) {
	t.Run("creates a fresh widget per call", func(t *testing.T) {
		store := NewCacheStore(time.Minute, time.Minute)

		firstID, first := store.Create()
		secondID, second := store.Create()

		assert.NotEqual(t, firstID, secondID)
		assert.NotSame(t, first, second)
		assert.Equal(t, 2, store.Len())

		_, err := uuid.Parse(firstID)
		assert.NoError(t, err)
	})

	t.Run("returns the stored widget", func(t *testing.T) {
		store := NewCacheStore(time.Minute, time.Minute)
		id, created := store.Create()
		created.Increment()

		got, err := store.Get(id)
		require.NoError(t, err)
		assert.Same(t, created, got)
		assert.Equal(t, "1", got.State().Display)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		store := NewCacheStore(time.Minute, time.Minute)

		_, err := store.Get("missing")
		require.Error(t, err)
		assert.Equal(t, errs.NOT_FOUND_ERROR, errs.TypeOf(err))
	})

	t.Run("deleted widgets are gone", func(t *testing.T) {
		store := NewCacheStore(time.Minute, time.Minute)
		id, _ := store.Create()

		store.Delete(id)

		_, err := store.Get(id)
		assert.Error(t, err)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("widgets expire after the ttl", func(t *testing.T) {
		store := NewCacheStore(20*time.Millisecond, time.Hour)
		id, _ := store.Create()

		time.Sleep(50 * time.Millisecond)

		_, err := store.Get(id)
		assert.Error(t, err)
	})

	t.Run("reading a widget extends its ttl", func(t *testing.T) {
		store := NewCacheStore(200*time.Millisecond, time.Hour)
		id, _ := store.Create()

		for i := 0; i < 4; i++ {
			time.Sleep(100 * time.Millisecond)
			_, err := store.Get(id)
			require.NoError(t, err, "read %d", i+1)
		}
	})
}
