package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ai-counselor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerWritesUsageRecord(t *testing.T) {
	factory := newTestFactory(t)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))

	consumer := NewConsumerService(pubSub, events.TopicChatUsage, factory, testLogger())
	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(events.TopicChatUsage, pubSub)
	evt := events.ChatExchangeEvent{
		Type:           events.TypeChatExchange,
		SessionId:      "session-1",
		UserId:         7,
		QuestionLength: 21,
		AnswerLength:   120,
		DurationMs:     350,
		OccurredAt:     time.Now(),
	}
	payload, err := json.Marshal(evt)
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	uow := factory.NewUnitOfWork(ctx)
	assert.Eventually(t, func() bool {
		count, err := uow.UsageRecordRepository().Count(ctx)
		return err == nil && count == 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestConsumerSkipsMalformedPayload(t *testing.T) {
	factory := newTestFactory(t)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))

	consumer := NewConsumerService(pubSub, events.TopicChatUsage, factory, testLogger())
	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(events.TopicChatUsage, pubSub)
	require.NoError(t, publisher.Publish(ctx, []byte("{not json")))

	time.Sleep(100 * time.Millisecond)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.UsageRecordRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConsumerSkipsUnknownEventType(t *testing.T) {
	factory := newTestFactory(t)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))

	consumer := NewConsumerService(pubSub, events.TopicChatUsage, factory, testLogger())
	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(events.TopicChatUsage, pubSub)
	evt := events.ChatExchangeEvent{
		Type:      "SOMETHING_ELSE",
		SessionId: "session-1",
		UserId:    7,
	}
	payload, err := json.Marshal(evt)
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	time.Sleep(100 * time.Millisecond)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.UsageRecordRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
