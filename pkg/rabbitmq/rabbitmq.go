package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// contactQueue carries contact form submissions to the mail worker.
const contactQueue = "contact_queue"

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.SugaredLogger
}

// NewClient connects to RabbitMQ, opens a channel and declares the
// contact queue.
func NewClient(cfg Config, logger *zap.SugaredLogger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		contactQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", contactQueue, err)
	}

	logger.Infow("RabbitMQ client connected", "queue", contactQueue)
	return &Client{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishContactMessage publishes a contact submission to the contact
// queue as a persistent JSON message.
func (c *Client) PublishContactMessage(messageBody map[string]interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(messageBody)
	if err != nil {
		return fmt.Errorf("failed to marshal contact message: %w", err)
	}

	err = c.channel.Publish(
		"",           // default exchange
		contactQueue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish contact message: %w", err)
	}

	c.logger.Debugw("contact message published", "bytes", len(body))
	return nil
}

// ConsumeContactMessages starts a consumer for the contact queue. The
// mail worker passes a handler that sends the actual email; a handler
// error nacks the delivery back onto the queue.
func (c *Client) ConsumeContactMessages(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		contactQueue,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				c.logger.Errorw("contact message handling failed", "tag", msg.DeliveryTag, "error", err)
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					c.logger.Errorw("failed to nack message", "tag", msg.DeliveryTag, "error", requeueErr)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				c.logger.Errorw("failed to ack message", "tag", msg.DeliveryTag, "error", ackErr)
			}
		}
	}()

	return nil
}
