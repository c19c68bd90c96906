package testutil

import (
	"context"
	"sync"

	"github.com/questx-lab/questlog/pkg/pubsub"
)

type PublishedPack struct {
	Topic string
	Pack  *pubsub.Pack
}

// MockPublisher records every published pack. PublishFunc, when set, decides the result.
type MockPublisher struct {
	PublishFunc func(context.Context, string, *pubsub.Pack) error

	mu        sync.Mutex
	Published []PublishedPack
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, pack *pubsub.Pack) error {
	m.mu.Lock()
	m.Published = append(m.Published, PublishedPack{Topic: topic, Pack: pack})
	m.mu.Unlock()

	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, pack)
	}

	return nil
}
