package rabbitmq

import (
	"context"
	"fmt"
	"onboarding/internal/core/domain/logging"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectDelay = 3 * time.Second

// Connection is an amqp.Connection that redials the broker after it has
// been closed by the server.
type Connection struct {
	*amqp.Connection
	log logging.Logger
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{Connection: conn, log: log}
	go connection.watch(url)
	return connection, nil
}

func (c *Connection) watch(url string) {
	ctx := context.Background()
	for {
		reason, ok := <-c.Connection.NotifyClose(make(chan *amqp.Error))
		if !ok {
			c.log.Info(ctx, "RabbitMQ connection closed.")
			return
		}

		c.log.Warning(ctx, "RabbitMQ connection closed.", logging.Entry("reason", *reason))
		for {
			time.Sleep(reconnectDelay)

			conn, err := amqp.Dial(url)
			if err == nil {
				c.Connection = conn
				c.log.Info(ctx, "RabbitMQ reconnect success.")
				break
			}
			c.log.Error(ctx, "RabbitMQ reconnect failed.", logging.Entry("err", err))
		}
	}
}

// Channel opens a channel that is recreated whenever the broker closes it.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{Channel: ch, log: c.log}
	go c.watchChannel(channel)
	return channel, nil
}

func (c *Connection) watchChannel(channel *Channel) {
	ctx := context.Background()
	for {
		reason, ok := <-channel.Channel.NotifyClose(make(chan *amqp.Error))
		// closed on purpose
		if !ok || channel.IsClosed() {
			channel.Close()
			return
		}

		c.log.Warning(ctx, "RabbitMQ channel closed.", logging.Entry("reason", *reason))
		for {
			time.Sleep(reconnectDelay)

			ch, err := c.Connection.Channel()
			if err == nil {
				c.log.Info(ctx, "Channel recreate success.")
				channel.Channel = ch
				break
			}
			c.log.Error(ctx, "Channel recreate failed.", logging.Entry("err", err))
		}
	}
}

type Channel struct {
	*amqp.Channel
	closed int32
	log    logging.Logger
}

// IsClosed reports whether Close has been called.
func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if ch.IsClosed() {
		return amqp.ErrClosed
	}
	atomic.StoreInt32(&ch.closed, 1)
	return ch.Channel.Close()
}

// DeclareQueue declares a durable queue that survives broker restarts.
func (ch *Channel) DeclareQueue(name string) error {
	_, err := ch.Channel.QueueDeclare(name, true, false, false, false, nil)
	return err
}

// Consume keeps delivering messages across channel recreation until the
// channel is closed with Close.
func (ch *Channel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	deliveries := make(chan amqp.Delivery)

	go func() {
		defer close(deliveries)
		ctx := context.Background()
		for {
			d, err := ch.Channel.Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
			if err != nil {
				ch.log.Error(ctx, "Consume failed.", logging.Entry("err", err))
				time.Sleep(reconnectDelay)
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// the closed flag may be set shortly after the delivery channel ends
			time.Sleep(reconnectDelay)

			if ch.IsClosed() {
				ch.log.Info(ctx, "Channel is closed, stop consuming.", logging.Entry("queue", queue))
				return
			}
		}
	}()

	return deliveries, nil
}
