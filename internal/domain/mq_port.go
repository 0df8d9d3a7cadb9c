package domain

import "context"

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

// SubscriberPort delivers messages until ctx is cancelled; the channel
// is closed when the subscription ends.
type SubscriberPort interface {
	Subscribe(ctx context.Context, topic, groupID string) (<-chan Message, error)
}
