package service_test

import (
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/persistence"
	"github.com/spec-kit/teamboard/internal/service"
	"github.com/spec-kit/teamboard/internal/status"
)

// memoryRedis answers GET/SET/DEL from a map through a go-redis hook, so no server is dialed.
type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (m *memoryRedis) client() *persistence.Redis {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(m)
	return &persistence.Redis{Client: client}
}

func (m *memoryRedis) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memoryRedis) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (m *memoryRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		args := cmd.Args()
		key, _ := args[1].(string)
		switch strings.ToLower(cmd.Name()) {
		case "get":
			value, ok := m.data[key]
			if !ok {
				cmd.SetErr(redis.Nil)
				return redis.Nil
			}
			cmd.(*redis.StringCmd).SetVal(value)
		case "set":
			switch v := args[2].(type) {
			case []byte:
				m.data[key] = string(v)
			case string:
				m.data[key] = v
			}
		case "del":
			delete(m.data, key)
		}
		return nil
	}
}

func (m *memoryRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestDashboardCacheIsScopedToTheDay(t *testing.T) {
	now := fixedNow
	clock := func() time.Time { return now }
	deps := newDeps()
	deps.Clock = clock
	deps.Classifier = status.NewClassifier(status.WithClock(clock))
	cache := newMemoryRedis()
	deps.Cache = persistence.NewCache(cache.client(), "teamboard:", time.Minute, nil)
	ctx := context.Background()

	today := "2026-10-17"
	_, err := service.NewCertificationService(deps).Create(ctx, domain.Certification{
		Name: "CKA", Provider: "CNCF", AssignedTo: "Alice", ExpirationDate: &today,
	})
	gt.NoError(t, err).Required()

	board := service.NewBoardService(deps, 30)
	board.RegisterHandlers()

	summary, err := board.Summary(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, summary.CertificationsByStatus[string(status.CertificationExpiringSoon)], 1)
	gt.True(t, cache.has("teamboard:dashboard:2026-10-17"))

	// past midnight the cached entry for yesterday is not reused
	now = now.AddDate(0, 0, 1)
	summary, err = board.Summary(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, summary.CertificationsByStatus[string(status.CertificationExpired)], 1)
	gt.True(t, cache.has("teamboard:dashboard:2026-10-18"))

	_, err = service.NewMemberService(deps).Create(ctx, domain.TeamMember{Name: "Bob", Role: "Engineer"})
	gt.NoError(t, err).Required()
	gt.False(t, cache.has("teamboard:dashboard:2026-10-18"))
}
