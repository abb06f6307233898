package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/triqui/internal/apperror"
	"github.com/rocketscienceinc/triqui/internal/entity"
)

// ResultPublisher - announces finished rounds to whoever listens on the channel.
// Nothing is stored: a result published with no subscriber is gone.
type ResultPublisher interface {
	Publish(ctx context.Context, result *entity.Result) error
}

type redisResultPublisher struct {
	client  *redis.Client
	channel string
}

func NewResultPublisher(client *redis.Client, channel string) (ResultPublisher, error) {
	if channel == "" {
		return nil, apperror.ErrRedisChannelEmpty
	}

	return &redisResultPublisher{
		client:  client,
		channel: channel,
	}, nil
}

func (that *redisResultPublisher) Publish(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish result: %w", err)
	}

	return nil
}
