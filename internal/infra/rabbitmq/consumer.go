package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-api/internal/domain"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// MailSender is the slice of the mailer the consumer needs.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// StatusConsumer drains order status events and mails the purchaser.
// Failures are logged and the message acked anyway; a status mail is
// best-effort and must never wedge the queue.
type StatusConsumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mailer  MailSender
	log     *zap.SugaredLogger
}

func NewStatusConsumer(amqpURL, exchange, queue string, mailer MailSender, log *zap.SugaredLogger) (*StatusConsumer, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %v", err)
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %v", err)
	}

	if err := channel.QueueBind(queue, "order.status_changed", exchange, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %v", err)
	}

	return &StatusConsumer{
		conn:    conn,
		channel: channel,
		queue:   queue,
		mailer:  mailer,
		log:     log,
	}, nil
}

func (c *StatusConsumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %v", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-deliveries:
				if !ok {
					return
				}
				c.handle(msg)
			}
		}
	}()

	return nil
}

func (c *StatusConsumer) handle(msg amqp.Delivery) {
	defer msg.Ack(false)

	var evt domain.OrderStatusEvent
	if err := json.Unmarshal(msg.Body, &evt); err != nil {
		c.log.Errorw("dropping malformed status event", "error", err)
		return
	}

	if evt.Email == "" {
		c.log.Warnw("no email on file, skipping status mail", "orderId", evt.OrderID)
		return
	}

	subject := fmt.Sprintf("Order #%s Status Update", evt.OrderID)
	body := fmt.Sprintf("<p>Your order <b>#%s</b> status is now: <b>%s</b>.</p>", evt.OrderID, evt.StatusLabel)
	if err := c.mailer.Send(evt.Email, subject, body); err != nil {
		c.log.Errorw("failed to send status mail", "orderId", evt.OrderID, "error", err)
		return
	}

	c.log.Infow("status mail sent", "orderId", evt.OrderID, "status", evt.Status)
}

func (c *StatusConsumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
