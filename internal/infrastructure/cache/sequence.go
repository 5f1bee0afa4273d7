package cache

import (
	"context"
	"fmt"

	"garage_workflow/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const sequenceKeyFmt = "seq:%s:%s"

// RedisSequence hands out per-tenant numbers with INCR, which is atomic across API replicas.
type RedisSequence struct {
	client redis.Cmdable
}

var _ interfaces.INumberSequence = (*RedisSequence)(nil)

func NewRedisSequence(client redis.Cmdable) *RedisSequence {
	return &RedisSequence{client: client}
}

func (s *RedisSequence) Next(ctx context.Context, tenantID, kind string) (int64, error) {
	n, err := s.client.Incr(ctx, fmt.Sprintf(sequenceKeyFmt, tenantID, kind)).Result()
	if err != nil {
		return 0, fmt.Errorf("next %s number for tenant %s: %w", kind, tenantID, err)
	}
	return n, nil
}
