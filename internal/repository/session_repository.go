package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/senghong-shop/internal/cache"
	"github.com/senghong-shop/internal/session"
)

// SessionRepository 访客会话存储接口；Get 未命中时返回 nil, nil
type SessionRepository interface {
	Get(ctx context.Context, id string) (*session.State, error)
	Save(ctx context.Context, state session.State) error
	Delete(ctx context.Context, id string) error
}

type memorySessionEntry struct {
	state     session.State
	expiresAt time.Time
}

// MemorySessionRepository 进程内会话存储，按 TTL 过期
type MemorySessionRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memorySessionEntry
}

// NewMemorySessionRepository 创建进程内会话存储
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memorySessionEntry),
	}
}

// Get 读取会话，过期会话视为不存在
func (r *MemorySessionRepository) Get(_ context.Context, id string) (*session.State, error) {
	key := strings.TrimSpace(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[key]
	if !ok {
		return nil, nil
	}
	if r.ttl > 0 && !r.now().Before(entry.expiresAt) {
		delete(r.entries, key)
		return nil, nil
	}
	state := entry.state
	return &state, nil
}

// Save 保存会话并刷新过期时间
func (r *MemorySessionRepository) Save(_ context.Context, state session.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[state.ID] = memorySessionEntry{
		state:     state,
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

// Delete 删除会话
func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, strings.TrimSpace(id))
	return nil
}

// Sweep 清理已过期会话，返回清理数量
func (r *MemorySessionRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for key, entry := range r.entries {
		if r.ttl > 0 && !now.Before(entry.expiresAt) {
			delete(r.entries, key)
			removed++
		}
	}
	return removed
}

// RedisSessionRepository 基于 Redis 的会话存储，过期由 Redis TTL 负责
type RedisSessionRepository struct {
	ttl time.Duration
}

// NewRedisSessionRepository 创建 Redis 会话存储
func NewRedisSessionRepository(ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{ttl: ttl}
}

// Get 读取会话
func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*session.State, error) {
	var state session.State
	found, err := cache.GetJSON(ctx, cache.SessionKey(id), &state)
	if err != nil || !found {
		return nil, err
	}
	state.Cart = state.Cart.Recalculate()
	return &state, nil
}

// Save 保存会话并刷新 TTL
func (r *RedisSessionRepository) Save(ctx context.Context, state session.State) error {
	return cache.SetJSON(ctx, cache.SessionKey(state.ID), state, r.ttl)
}

// Delete 删除会话
func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	return cache.Del(ctx, cache.SessionKey(id))
}
