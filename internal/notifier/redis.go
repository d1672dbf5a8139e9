package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const showAddedEvent = "show.added"

type message struct {
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

type showAddedData struct {
	EventName string `json:"eventName"`
}

// RedisNotifier publishes notifications on a Redis pub/sub channel.
type RedisNotifier struct {
	client  redis.UniversalClient
	channel string
}

func NewRedisNotifier(client redis.UniversalClient, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
	}
}

func (n *RedisNotifier) ShowAdded(ctx context.Context, eventName string) error {
	payload, err := json.Marshal(message{
		Name:       showAddedEvent,
		OccurredAt: time.Now().UTC(),
		Data:       showAddedData{EventName: eventName},
	})
	if err != nil {
		return err
	}

	return n.client.Publish(ctx, n.channel, payload).Err()
}
