package prefs_test

import (
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/prefs"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openManager(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	manager, err := gdata.Open(gdata.Config{AppName: "blockfall_test"})
	require.NoError(t, err)
	return manager
}

func TestStore(t *testing.T) {
	t.Run("empty storage", func(t *testing.T) {
		store := prefs.NewStore(openManager(t))
		_, ok := store.LastSpeed()
		assert.False(t, ok)
	})

	t.Run("remembered speed survives reopening", func(t *testing.T) {
		manager := openManager(t)

		store := prefs.NewStore(manager)
		require.NoError(t, store.RememberSpeed(config.Fast))

		reopened := prefs.NewStore(manager)
		rate, ok := reopened.LastSpeed()
		assert.True(t, ok)
		assert.Equal(t, config.Fast, rate)
	})

	t.Run("rejects rates outside the menu", func(t *testing.T) {
		store := prefs.NewStore(nil)
		assert.ErrorIs(t, store.RememberSpeed(config.TickRate(60)), config.ErrUnknownSpeed)
	})

	t.Run("memory only without a manager", func(t *testing.T) {
		store := prefs.NewStore(nil)
		require.NoError(t, store.RememberSpeed(config.Slow))

		rate, ok := store.LastSpeed()
		assert.True(t, ok)
		assert.Equal(t, config.Slow, rate)

		require.NoError(t, store.Load())
		_, ok = store.LastSpeed()
		assert.False(t, ok)
	})

	t.Run("corrupt data starts empty", func(t *testing.T) {
		manager := openManager(t)
		require.NoError(t, manager.SaveObjectProp("prefs", "menu", []byte("speed: [")))

		store := prefs.NewStore(manager)
		_, ok := store.LastSpeed()
		assert.False(t, ok)
		assert.Error(t, store.Load())
	})
}
