package kafka

import (
	"context"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/questx-lab/questlog/pkg/pubsub"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		require.Equal(t, `{"name":"countHidden"}`, string(val))
		return nil
	})

	p := &publisher{clientID: "test", producer: producer}
	err := p.Publish(context.Background(), "questlog.setting_changed", &pubsub.Pack{
		Key: []byte("1"),
		Msg: []byte(`{"name":"countHidden"}`),
	})
	require.NoError(t, err)
	require.NoError(t, p.Stop(context.Background()))
}

func TestPublisher_PublishFailed(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := &publisher{clientID: "test", producer: producer}
	err := p.Publish(context.Background(), "topic", &pubsub.Pack{Msg: []byte("x")})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Stop(context.Background()))
}

func TestNoopPublisher(t *testing.T) {
	require.NoError(t, NewNoopPublisher().Publish(context.Background(), "topic", &pubsub.Pack{}))
}
