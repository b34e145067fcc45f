package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"background-jobs/jobs/domain"

	"github.com/redis/go-redis/v9"
)

type RedisStatsStore struct {
	rdb *redis.Client

	prefix string
	// ttl aplica apenas em chaves de série temporal / por nome.
	// total é cumulativo e não expira.
	ttl time.Duration

	bucket string // "minute" (padrão) ou "none"

	trackNames bool
}

type RedisStatsOption func(*RedisStatsStore)

func WithStatsPrefix(prefix string) RedisStatsOption {
	return func(s *RedisStatsStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

func WithStatsTTL(d time.Duration) RedisStatsOption {
	return func(s *RedisStatsStore) { s.ttl = d }
}

func WithStatsBucket(bucket string) RedisStatsOption {
	return func(s *RedisStatsStore) { s.bucket = strings.ToLower(strings.TrimSpace(bucket)) }
}

func WithStatsTrackNames(track bool) RedisStatsOption {
	return func(s *RedisStatsStore) { s.trackNames = track }
}

func NewRedisStatsStore(rdb *redis.Client, opts ...RedisStatsOption) *RedisStatsStore {
	s := &RedisStatsStore{
		rdb:    rdb,
		prefix: "jobs:stats",
		ttl:    24 * time.Hour,
		bucket: "minute",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStatsStore) Record(ctx context.Context, ev domain.StatsEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	field := string(domain.OutcomeFailed)
	if ev.Outcome == domain.OutcomeSucceeded {
		field = string(domain.OutcomeSucceeded)
	}

	totalKey := s.prefix + ":total"

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, totalKey, field, 1)

	if s.bucket == "minute" {
		bucketKey := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
		pipe.HIncrBy(ctx, bucketKey, field, 1)
		if s.ttl > 0 {
			pipe.Expire(ctx, bucketKey, s.ttl)
		}
	}

	if s.trackNames {
		name := strings.TrimSpace(ev.Name)
		if name != "" {
			nameKey := s.prefix + ":name:" + name
			pipe.HIncrBy(ctx, nameKey, field, 1)
			if ev.Duration > 0 {
				pipe.HIncrBy(ctx, nameKey, field+":ms", ev.Duration.Milliseconds())
			}
			if s.ttl > 0 {
				pipe.Expire(ctx, nameKey, s.ttl)
			}
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
