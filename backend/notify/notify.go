// Package notify publishes lifecycle transition events to RabbitMQ so
// downstream consumers (dashboards, mailers) can react without polling.
// Publishing is best effort: a broker outage never fails the
// transition that triggered the event.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"civictrack/backend/lifecycle"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

// Notifier is a RabbitMQ publisher bound to a topic exchange. Events
// are routed as report.<action>, so a consumer can bind report.# for
// everything or report.completed for one transition.
type Notifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewNotifier connects and declares the topic exchange.
func NewNotifier(amqpURL, exchangeName string) (*Notifier, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Notifier{
		conn:     conn,
		channel:  channel,
		exchange: exchangeName,
	}, nil
}

// RoutingKey maps an event to its topic.
func RoutingKey(e *lifecycle.Event) string {
	return "report." + e.Action
}

// PublishTransition sends the event as a persistent JSON message.
func (n *Notifier) PublishTransition(e *lifecycle.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event to JSON: %w", err)
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}

	err = n.channel.Publish(
		n.exchange,
		RoutingKey(e),
		false, // mandatory
		false, // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// PublishTransitionAsync publishes in a goroutine and only logs a
// failure.
func (n *Notifier) PublishTransitionAsync(e *lifecycle.Event) {
	go func() {
		if err := n.PublishTransition(e); err != nil {
			log.Errorf("Failed to publish transition for report %d: %v", e.ReportSeq, err)
		}
	}()
}

// IsConnected checks if the notifier is still connected.
func (n *Notifier) IsConnected() bool {
	if n.conn == nil || n.channel == nil {
		return false
	}
	select {
	case <-n.conn.NotifyClose(make(chan *amqp.Error)):
		return false
	default:
		return true
	}
}

// Close closes the channel and the connection.
func (n *Notifier) Close() error {
	var err error
	if n.channel != nil {
		if channelErr := n.channel.Close(); channelErr != nil {
			log.Errorf("Failed to close channel: %v", channelErr)
			err = channelErr
		}
	}
	if n.conn != nil {
		if connErr := n.conn.Close(); connErr != nil {
			log.Errorf("Failed to close connection: %v", connErr)
			if err == nil {
				err = connErr
			}
		}
	}
	return err
}
