package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Getters(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("paths.data_dir", "data"))
	require.NoError(t, store.Set("finalize.max_images", int64(4)))
	require.NoError(t, store.Set("finalize.keep_images", float64(1)))
	require.NoError(t, store.Set("history.enabled", true))
	require.NoError(t, store.Set("extract.markers", []any{"答案", 7, "题目"}))

	assert.Equal(t, "data", store.GetString("paths.data_dir"))
	assert.Equal(t, 4, store.GetInt("finalize.max_images"))
	assert.Equal(t, 1, store.GetInt("finalize.keep_images"))
	assert.True(t, store.GetBool("history.enabled"))
	assert.Equal(t, []string{"答案", "题目"}, store.GetStringSlice("extract.markers"))

	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("paths.data_dir"))
	assert.False(t, store.GetBool("paths.data_dir"))
	assert.Nil(t, store.GetStringSlice("history.enabled"))
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("b", 1)
	_ = store.Set("a", 2)

	assert.Equal(t, []string{"a", "b"}, store.Keys())
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
