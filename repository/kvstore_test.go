package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreBasicOperations(t *testing.T) {
	store := NewMemoryStore()

	// 不存在的键
	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	// 写入后可读
	require.NoError(t, store.Set("key", "value"))
	value, ok, err := store.Get("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "value", value)

	// 覆盖写
	require.NoError(t, store.Set("key", "value2"))
	value, _, _ = store.Get("key")
	assert.Equal(t, "value2", value)

	// 删除
	require.NoError(t, store.Remove("key"))
	_, ok, err = store.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)

	// 删除不存在的键不报错
	require.NoError(t, store.Remove("missing"))
}
