package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"stay-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// AllRatesChanges binds every event published under the pricing prefix.
const AllRatesChanges = "pricing.#"

type HandlerFunc func(ctx context.Context, evt shared.RatesChanged) error

// AMQPSubscriber delivers RatesChanged events from a queue bound to the pricing exchange.
type AMQPSubscriber struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewAMQPSubscriber declares queue (server-named and exclusive when empty) and binds it with bindingKey.
func NewAMQPSubscriber(url, exchange, queue, bindingKey string) (*AMQPSubscriber, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if bindingKey == "" {
		bindingKey = AllRatesChanges
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	exclusive := queue == ""
	q, err := ch.QueueDeclare(
		queue,      // name
		!exclusive, // durable
		exclusive,  // delete when unused
		exclusive,  // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, bindingKey, exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	slog.Info("subscribed to rate changes", "exchange", exchange, "queue", q.Name, "binding", bindingKey)

	return &AMQPSubscriber{conn: conn, ch: ch, queue: q.Name}, nil
}

// Run consumes until ctx is done or the broker closes the delivery channel.
func (s *AMQPSubscriber) Run(ctx context.Context, handle HandlerFunc) error {
	if err := s.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := s.ch.Consume(
		s.queue, // queue
		"",      // consumer
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			s.process(ctx, msg, handle)
		}
	}
}

func (s *AMQPSubscriber) process(ctx context.Context, msg amqp.Delivery, handle HandlerFunc) {
	evt, err := decodeRatesChanged(msg.Body)
	if err != nil {
		slog.Warn("dropping malformed rate change", "error", err.Error())
		_ = msg.Nack(false, false)
		return
	}
	if err := handle(ctx, evt); err != nil {
		slog.Error("rate change handler failed", "event", evt.Name, "id", evt.ID, "error", err.Error())
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}

func (s *AMQPSubscriber) Close() error {
	if err := s.ch.Close(); err != nil {
		s.conn.Close()
		return fmt.Errorf("error closing channel: %w", err)
	}
	return s.conn.Close()
}

func decodeRatesChanged(body []byte) (shared.RatesChanged, error) {
	var evt shared.RatesChanged
	if err := json.Unmarshal(body, &evt); err != nil {
		return shared.RatesChanged{}, fmt.Errorf("failed to decode rate change: %w", err)
	}
	if evt.Name == "" || evt.TargetID == uuid.Nil {
		return shared.RatesChanged{}, errors.New("rate change is missing name or target")
	}
	return evt, nil
}
