package cache

import (
	"Suivi/config"
	"Suivi/pkg/log"
	"Suivi/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DirectoryStore memoizes directory search responses.
type DirectoryStore interface {
	Get(ctx context.Context, kind, query string) ([]types.DirectoryMatch, bool)
	Set(ctx context.Context, kind, query string, matches []types.DirectoryMatch)
}

func NewDirectoryStore(cfg *config.Config, rdb *redis.Client) DirectoryStore {
	switch cfg.Directory.Cache {
	case config.CacheRedis:
		if rdb == nil {
			log.L.Warn("directory cache set to redis but redis is not configured")
			return NoopStore{}
		}
		return NewRedisDirectoryStore(rdb, cfg.Directory.CacheTTL)
	case config.CacheMemory:
		return NewMemoryDirectoryStore(cfg.Directory.CacheTTL)
	default:
		return NoopStore{}
	}
}

func directoryKey(kind, query string) string {
	return fmt.Sprintf("suivi:directory:%s:%s", kind, query)
}

type NoopStore struct{}

func (NoopStore) Get(context.Context, string, string) ([]types.DirectoryMatch, bool) {
	return nil, false
}

func (NoopStore) Set(context.Context, string, string, []types.DirectoryMatch) {}

type RedisDirectoryStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisDirectoryStore(rdb *redis.Client, ttl time.Duration) *RedisDirectoryStore {
	return &RedisDirectoryStore{redis: rdb, ttl: ttl}
}

func (s *RedisDirectoryStore) Get(ctx context.Context, kind, query string) ([]types.DirectoryMatch, bool) {
	val, err := s.redis.Get(ctx, directoryKey(kind, query)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("directory cache get failed", zap.String("kind", kind), zap.Error(err))
		}
		return nil, false
	}

	var matches []types.DirectoryMatch
	if err := json.Unmarshal(val, &matches); err != nil {
		log.L.Warn("directory cache decode failed", zap.String("kind", kind), zap.Error(err))
		return nil, false
	}
	return matches, true
}

// Set 缓存失败只记录日志，不影响查询结果
func (s *RedisDirectoryStore) Set(ctx context.Context, kind, query string, matches []types.DirectoryMatch) {
	val, err := json.Marshal(matches)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, directoryKey(kind, query), val, s.ttl).Err(); err != nil {
		log.L.Warn("directory cache set failed", zap.String("kind", kind), zap.Error(err))
	}
}

type memoryEntry struct {
	matches   []types.DirectoryMatch
	expiresAt time.Time
}

type MemoryDirectoryStore struct {
	items cmap.ConcurrentMap[string, memoryEntry]
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryDirectoryStore(ttl time.Duration) *MemoryDirectoryStore {
	return &MemoryDirectoryStore{
		items: cmap.New[memoryEntry](),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryDirectoryStore) Get(_ context.Context, kind, query string) ([]types.DirectoryMatch, bool) {
	key := directoryKey(kind, query)
	entry, ok := s.items.Get(key)
	if !ok {
		return nil, false
	}
	if !s.now().Before(entry.expiresAt) {
		s.items.Remove(key)
		return nil, false
	}
	return append([]types.DirectoryMatch(nil), entry.matches...), true
}

func (s *MemoryDirectoryStore) Set(_ context.Context, kind, query string, matches []types.DirectoryMatch) {
	s.items.Set(directoryKey(kind, query), memoryEntry{
		matches:   append([]types.DirectoryMatch(nil), matches...),
		expiresAt: s.now().Add(s.ttl),
	})
}
