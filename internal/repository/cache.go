package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/redis/go-redis/v9"
)

// EventCache is a read-through Redis cache for event lookups by slug.
// Mutating paths invalidate; every error on the read path is treated by
// callers as a miss. With a nil client the cache is disabled and every
// read is a miss.
type EventCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEventCache(client *redis.Client, ttl time.Duration) *EventCache {
	return &EventCache{client: client, ttl: ttl}
}

func eventKey(slug string) string {
	return "event:" + slug
}

func (c *EventCache) GetEvent(ctx context.Context, slug string) (*domain.Event, error) {
	if c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, eventKey(slug)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var event domain.Event
	if err = json.Unmarshal([]byte(data), &event); err != nil {
		return nil, err
	}

	return &event, nil
}

func (c *EventCache) SetEvent(ctx context.Context, e *domain.Event) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, eventKey(e.Slug), data, c.ttl).Err()
}

func (c *EventCache) DeleteEvent(ctx context.Context, slug string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, eventKey(slug)).Err()
}
