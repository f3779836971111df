package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard-api/internal/dto"
)

// BoardCache caches aggregated board views in Redis. A nil *BoardCache (or
// one built without a client) disables caching; every method tolerates that,
// so services never branch on whether Redis is wired.
type BoardCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewBoardCache creates a board view cache. client may be nil.
func NewBoardCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *BoardCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardCache{client: client, ttl: ttl, logger: logger}
}

func detailKey(boardID uuid.UUID) string {
	return "taskboard:board-detail:" + boardID.String()
}

// GetDetail returns the cached aggregated view, or nil on miss or any cache
// failure. Cache failures are logged, never surfaced.
func (c *BoardCache) GetDetail(ctx context.Context, boardID uuid.UUID) *dto.BoardDetailResponse {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, detailKey(boardID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("board cache read failed", zap.String("board_id", boardID.String()), zap.Error(err))
		}
		return nil
	}
	var detail dto.BoardDetailResponse
	if err := json.Unmarshal(data, &detail); err != nil {
		c.logger.Warn("board cache entry corrupt, dropping", zap.String("board_id", boardID.String()), zap.Error(err))
		c.client.Del(ctx, detailKey(boardID))
		return nil
	}
	return &detail
}

// SetDetail stores the aggregated view with the configured TTL
func (c *BoardCache) SetDetail(ctx context.Context, boardID uuid.UUID, detail *dto.BoardDetailResponse) {
	if c == nil || c.client == nil || detail == nil {
		return
	}
	data, err := json.Marshal(detail)
	if err != nil {
		c.logger.Warn("board cache encode failed", zap.String("board_id", boardID.String()), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, detailKey(boardID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("board cache write failed", zap.String("board_id", boardID.String()), zap.Error(err))
	}
}

// Invalidate drops the cached view after any mutation under the board
func (c *BoardCache) Invalidate(ctx context.Context, boardID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, detailKey(boardID)).Err(); err != nil {
		c.logger.Warn("board cache invalidation failed", zap.String("board_id", boardID.String()), zap.Error(err))
	}
}
