package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"

	"github.com/travel-assistant-poc/server/internal/assistant/model"
	errx "github.com/travel-assistant-poc/server/internal/core/error"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
)

// RedisTranscriptStore mirrors conversation turns into Redis for later
// inspection. Conversation state itself stays client-owned; this store is a
// debugging sidecar, so every key carries a TTL refreshed on touch.
type RedisTranscriptStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisTranscriptStore(rdb redis.Cmdable, ttl time.Duration) *RedisTranscriptStore {
	return &RedisTranscriptStore{rdb: rdb, ttl: ttl}
}

func (s *RedisTranscriptStore) transcriptKey(conversationID string) string {
	return fmt.Sprintf("transcript:%s:messages", conversationID)
}

func (s *RedisTranscriptStore) AddMessage(ctx context.Context, conversationID string, message *schema.Message) error {
	b, err := json.Marshal(message)
	if err != nil {
		logx.Error().Err(err).Str("conversationID", conversationID).Msg("failed to marshal message")
		return fmt.Errorf("marshal message: %w", err)
	}
	key := s.transcriptKey(conversationID)

	if err := s.rdb.RPush(ctx, key, b).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push message to redis")
		return errx.WrapRedis(err)
	}
	// extend TTL on touch
	if s.ttl > 0 {
		if ok, err := s.rdb.Expire(ctx, key, s.ttl).Result(); err != nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to set expire")
			return errx.WrapRedis(err)
		} else if !ok {
			logx.Warn().Str("key", key).Dur("ttl", s.ttl).Msg("failed to set TTL on transcript key")
		}
	}
	return nil
}

func (s *RedisTranscriptStore) LoadHistory(ctx context.Context, conversationID string) (*model.Transcript, error) {
	key := s.transcriptKey(conversationID)

	rows, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return &model.Transcript{ConversationID: conversationID, Messages: []*schema.Message{}}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load transcript from redis")
		return nil, errx.WrapRedis(err)
	}

	msgs := make([]*schema.Message, 0, len(rows))
	for i, raw := range rows {
		var m schema.Message
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			logx.Error().Err(err).Str("conversationID", conversationID).Int("index", i).Msg("failed to unmarshal message")
			return nil, fmt.Errorf("unmarshal message at index %d: %w", i, err)
		}
		msgs = append(msgs, &m)
	}
	return &model.Transcript{ConversationID: conversationID, Messages: msgs}, nil
}

func (s *RedisTranscriptStore) ClearHistory(ctx context.Context, conversationID string) error {
	key := s.transcriptKey(conversationID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete transcript from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (s *RedisTranscriptStore) MessageCount(ctx context.Context, conversationID string) (int, error) {
	key := s.transcriptKey(conversationID)
	n, err := s.rdb.LLen(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to count transcript messages")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ model.TranscriptStore = (*RedisTranscriptStore)(nil)
