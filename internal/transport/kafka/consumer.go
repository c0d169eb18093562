package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"shipping-service/internal/logx"
	"shipping-service/internal/service/courierevents"
)

// HandleFunc processes a single courier event from Kafka.
type HandleFunc func(context.Context, courierevents.Event) error

// replaceable in tests
var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches courier events to a
// handler.
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
}

// NewConsumer creates a new Kafka consumer. Returns nil when the Kafka
// settings are incomplete, so the worker can run without a broker.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger,
	}, nil
}

// Run starts the consumer loop until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			time.Sleep(time.Second)
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var dto EventDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			h.c.logger.Warn("kafka bad json", logx.Err(err))
			sess.MarkMessage(msg, "")
			continue
		}

		ev := ToDomain(dto)
		if ev.OrderID == "" {
			h.c.logger.Warn("kafka empty order_id")
			sess.MarkMessage(msg, "")
			continue
		}

		// the offset stays uncommitted on handler errors so the group
		// redelivers the message after the session rebalances
		if err := h.c.handler(sess.Context(), ev); err != nil {
			h.c.logger.Error("kafka handle failed",
				logx.String("order_id", ev.OrderID),
				logx.String("status", ev.Status),
				logx.Err(err),
			)
			return err
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}
