// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/models"
)

const (
	redisKeyPrefix      = "lytodo:snapshot:"
	redisFieldContent   = "content"
	redisFieldUpdatedAt = "updated_at"
	redisMaxRetries     = 1
)

// NewConnectRedis creates a go-redis client for cfg and verifies it with a
// PING.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Address,
		Password:   cfg.Password,
		DB:         cfg.DB,
		MaxRetries: redisMaxRetries,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// redisSnapshotStorage stores each snapshot as a hash with the content and
// the update time in unix nanoseconds. Both fields are set by one HSET, which
// Redis applies atomically.
type redisSnapshotStorage struct {
	client redis.Cmdable
	logger *logger.Logger
}

// NewRedisSnapshotStorage constructs a [SnapshotStorage] over client.
func NewRedisSnapshotStorage(client redis.Cmdable, log *logger.Logger) SnapshotStorage {
	log.Debug().Msg("creating redis snapshot storage")
	return &redisSnapshotStorage{client: client, logger: log}
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

func (s *redisSnapshotStorage) Read(ctx context.Context, key string) (models.Snapshot, error) {
	if err := ValidateKey(key); err != nil {
		return models.Snapshot{}, err
	}

	log := logger.FromContext(ctx)

	fields, err := s.client.HGetAll(ctx, redisKey(key)).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisSnapshotStorage.Read").Msg("error reading snapshot hash")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrStorageIO, err)
	}

	content, ok := fields[redisFieldContent]
	if !ok {
		return models.Snapshot{}, ErrSnapshotNotFound
	}

	var updatedAt time.Time
	if nanos, err := strconv.ParseInt(fields[redisFieldUpdatedAt], 10, 64); err == nil {
		updatedAt = time.Unix(0, nanos).UTC()
	} else {
		log.Warn().Err(err).Str("func", "*redisSnapshotStorage.Read").Msg("snapshot hash has malformed updated_at")
	}

	return models.Snapshot{Content: []byte(content), UpdatedAt: updatedAt}, nil
}

func (s *redisSnapshotStorage) Write(ctx context.Context, key string, content []byte) (models.Snapshot, error) {
	if err := ValidateKey(key); err != nil {
		return models.Snapshot{}, err
	}

	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	err := s.client.HSet(ctx, redisKey(key),
		redisFieldContent, content,
		redisFieldUpdatedAt, now.UnixNano(),
	).Err()
	if err != nil {
		log.Err(err).Str("func", "*redisSnapshotStorage.Write").Msg("error writing snapshot hash")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrStorageIO, err)
	}

	log.Debug().Str("func", "*redisSnapshotStorage.Write").Int("length", len(content)).Msg("snapshot written")
	return models.Snapshot{Content: content, UpdatedAt: now}, nil
}
