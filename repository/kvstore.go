package repository

import "sync"

// KVStore 持久化键值存储接口。生命周期核心只依赖这三个操作，
// 具体后端由配置决定（MongoDB或内存）。
type KVStore interface {
	// Get 读取键值，第二个返回值表示键是否存在
	Get(key string) (string, bool, error)
	// Set 写入键值
	Set(key, value string) error
	// Remove 删除键
	Remove(key string) error
}

// MemoryStore 内存键值存储，用于测试和无数据库的本地开发
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore 创建内存键值存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get 读取键值
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok, nil
}

// Set 写入键值
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Remove 删除键
func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
