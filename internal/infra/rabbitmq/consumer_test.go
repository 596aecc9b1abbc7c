package rabbitmq

import (
	"encoding/json"
	"strings"
	"testing"

	"storefront-api/internal/domain"
	"storefront-api/internal/mocks"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type recordingAcknowledger struct {
	acked  bool
	nacked bool
}

func (a *recordingAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}

func (a *recordingAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = true
	return nil
}

func (a *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	a.nacked = true
	return nil
}

func newConsumerForTest(mailer MailSender) *StatusConsumer {
	return &StatusConsumer{mailer: mailer, log: zap.NewNop().Sugar()}
}

func statusDelivery(t *testing.T, ack amqp.Acknowledger, evt domain.OrderStatusEvent) amqp.Delivery {
	t.Helper()
	body, err := json.Marshal(evt)
	assert.NoError(t, err)
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}
}

func TestStatusConsumer_Handle(t *testing.T) {
	tests := []struct {
		name       string
		event      domain.OrderStatusEvent
		setupMocks func(*mocks.MockMailer)
		expectSend bool
	}{
		{
			name: "status mail sent to billing email",
			event: domain.OrderStatusEvent{
				OrderID:     "1234",
				Email:       "ali@example.com",
				Status:      domain.OrderDelivered,
				StatusLabel: "Delivered",
			},
			setupMocks: func(m *mocks.MockMailer) {
				m.On("Send", "ali@example.com", "Order #1234 Status Update", mock.MatchedBy(func(body string) bool {
					return strings.Contains(body, "#1234") && strings.Contains(body, "Delivered")
				})).Return(nil)
			},
			expectSend: true,
		},
		{
			name: "missing recipient skipped",
			event: domain.OrderStatusEvent{
				OrderID: "1234",
				Status:  domain.OrderAccepted,
			},
			setupMocks: func(*mocks.MockMailer) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mocks.MockMailer)
			tt.setupMocks(m)
			ack := &recordingAcknowledger{}

			c := newConsumerForTest(m)
			c.handle(statusDelivery(t, ack, tt.event))

			assert.True(t, ack.acked)
			assert.False(t, ack.nacked)
			if !tt.expectSend {
				m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestStatusConsumer_Handle_SendFailureStillAcked(t *testing.T) {
	m := new(mocks.MockMailer)
	m.On("Send", "ali@example.com", mock.Anything, mock.Anything).Return(assert.AnError)
	ack := &recordingAcknowledger{}

	c := newConsumerForTest(m)
	c.handle(statusDelivery(t, ack, domain.OrderStatusEvent{
		OrderID: "1234",
		Email:   "ali@example.com",
		Status:  domain.OrderAccepted,
	}))

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
}

func TestStatusConsumer_Handle_MalformedEventDropped(t *testing.T) {
	m := new(mocks.MockMailer)
	ack := &recordingAcknowledger{}

	c := newConsumerForTest(m)
	c.handle(amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte("not json")})

	assert.True(t, ack.acked)
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
