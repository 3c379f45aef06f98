package storage

import (
	"context"
	"encoding/json"

	"railassist/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// EventsChannel is the Redis pub/sub channel carrying complaint lifecycle
// events for live dashboards and the websocket notification stream.
const EventsChannel = "complaints:events"

// PublishEvent pushes a lifecycle event on the events channel.
func (s *Service) PublishEvent(ctx context.Context, event models.ComplaintEvent) error {
	if s.Redis == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(ctx, EventsChannel, payload).Err()
}

// SubscribeEvents subscribes to the lifecycle event channel. The caller
// owns the returned subscription and must close it.
func (s *Service) SubscribeEvents(ctx context.Context) *redis.PubSub {
	return s.Redis.Subscribe(ctx, EventsChannel)
}
