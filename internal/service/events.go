package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/doggee/internal/logging"
)

const (
	TopicUserEvents = "user_events"
	TopicDogEvents  = "dog_events"

	publishTimeout = 5 * time.Second
)

type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type Event struct {
	Type   string    `json:"type"`
	UserID uint      `json:"userId"`
	DogID  uint      `json:"dogId,omitempty"`
	Name   string    `json:"name,omitempty"`
	At     time.Time `json:"at"`
}

// publish never fails the caller: the database write already happened and
// a lost event is only logged.
func publish(ctx context.Context, p EventPublisher, topic string, ev Event) {
	if p == nil {
		return
	}
	ev.At = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.PublishEvent(ctx, topic, strconv.FormatUint(uint64(ev.UserID), 10), ev); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", topic, "type", ev.Type, "error", err)
	}
}
