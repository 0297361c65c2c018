package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestChangeMessage_JSON(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("IST", 19800))
	msg := NewChangeMessage("op-1", "CreateTransaction", []ledger.Entity{ledger.EntityTransactions, ledger.EntityAccounts}, at)

	data, err := msg.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"operationID":"op-1","action":"CreateTransaction","entities":["transactions","accounts"],"occurredAt":"2025-03-01T04:30:00Z"}`, string(data))

	back, err := ChangeMessageFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, msg.Entities, back.Entities)

	_, err = ChangeMessageFromJSON([]byte("{"))
	assert.Error(t, err)
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", "ledger", "direct", true, false, false, false, amqp091.Table(nil)).Return(nil)
	ch.On("PublishWithContext", mock.Anything, "ledger", RoutingKey, false, false, mock.MatchedBy(func(p amqp091.Publishing) bool {
		return p.ContentType == "application/json" && p.MessageId == "op-2" && p.DeliveryMode == amqp091.Persistent
	})).Return(nil)

	p, err := newPublisher(ch, "ledger")
	require.NoError(t, err)

	err = p.Publish(context.Background(), NewChangeMessage("op-2", "DeleteAccount", []ledger.Entity{ledger.EntityAccounts}, time.Now()))
	assert.NoError(t, err)
	ch.AssertExpectations(t)
}

func TestAMQPPublisher_DeclareFails(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("access refused"))
	ch.On("Close").Return(nil)

	_, err := newPublisher(ch, "ledger")
	assert.ErrorContains(t, err, "declare exchange")
	ch.AssertExpectations(t)
}

func TestAMQPPublisher_PublishFails(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel closed"))

	p, err := newPublisher(ch, "ledger")
	require.NoError(t, err)

	err = p.Publish(context.Background(), NewChangeMessage("op-3", "UpdateCategory", nil, time.Now()))
	assert.ErrorContains(t, err, "publish message")
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), &ChangeMessage{}))
	assert.NoError(t, p.Close())
}
