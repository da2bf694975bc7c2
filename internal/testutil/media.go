package testutil

import (
	"Blogicum/internal/api/dto"
	"context"
	"sync"
	"time"
)

// MemMediaStore 内存版图片存储与待认领登记
type MemMediaStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	pending map[string]*dto.MediaTempMetadata
}

func NewMemMediaStore() *MemMediaStore {
	return &MemMediaStore{
		objects: make(map[string][]byte),
		pending: make(map[string]*dto.MediaTempMetadata),
	}
}

func (m *MemMediaStore) Put(_ context.Context, key string, data []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *MemMediaStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *MemMediaStore) PublicURL(key string) string {
	return "http://media.test/blogicum/" + key
}

func (m *MemMediaStore) SavePending(_ context.Context, key string, meta *dto.MediaTempMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[key] = meta
	return nil
}

func (m *MemMediaStore) GetPending(_ context.Context, key string) (*dto.MediaTempMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending[key], nil
}

func (m *MemMediaStore) RemovePending(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[key]
	delete(m.pending, key)
	return ok, nil
}

func (m *MemMediaStore) ListPending(_ context.Context) (map[string]*dto.MediaTempMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]*dto.MediaTempMetadata, len(m.pending))
	for k, v := range m.pending {
		out[k] = v
	}
	return out, nil
}

// Stage 模拟一次已完成但未被引用的上传
func (m *MemMediaStore) Stage(key string, userID uint64, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = []byte("img")
	m.pending[key] = &dto.MediaTempMetadata{MimeType: "image/jpeg", UserID: userID, CreatedAt: at.Unix()}
}

// PutObject 只写对象，不登记
func (m *MemMediaStore) PutObject(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = []byte("img")
}

// PutBrokenPending 登记一条无法解析的记录
func (m *MemMediaStore) PutBrokenPending(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = []byte("img")
	m.pending[key] = nil
}

func (m *MemMediaStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Pending 待认领记录，不存在时为 nil
func (m *MemMediaStore) Pending(key string) *dto.MediaTempMetadata {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending[key]
}

func (m *MemMediaStore) ObjectCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// MemBlacklist 内存版令牌黑名单
type MemBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func NewMemBlacklist() *MemBlacklist {
	return &MemBlacklist{revoked: make(map[string]time.Duration)}
}

func (b *MemBlacklist) Revoke(_ context.Context, signature string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[signature] = ttl
	return nil
}

func (b *MemBlacklist) IsRevoked(_ context.Context, signature string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.revoked[signature]
	return ok, nil
}

// TTL 撤销时记录的过期时间
func (b *MemBlacklist) TTL(signature string) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revoked[signature]
}
