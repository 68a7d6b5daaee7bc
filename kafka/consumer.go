package kafka

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/IBM/sarama"
)

// Handler processes one consumed message. Returning an error leaves the
// offset unmarked so the message can be redelivered; a nil error marks it.
type Handler func(ctx context.Context, message []byte) error

// JSONHandler decodes messages into T before handing them to process.
// Undecodable messages are skipped (marked), not retried forever.
func JSONHandler[T any](process func(ctx context.Context, msg *T) error) Handler {
	return func(ctx context.Context, message []byte) error {
		var msg T
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("Skipping undecodable message: %v", err)
			return nil
		}
		return process(ctx, &msg)
	}
}

// Consumer consumes one topic within a consumer group.
type Consumer struct {
	group   sarama.ConsumerGroup
	handler Handler
	topic   string
	groupID string
	ready   chan struct{}
}

// NewConsumer creates a consumer group client for the topic.
func NewConsumer(brokers []string, topic, groupID string, handler Handler) (*Consumer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		group:   group,
		handler: handler,
		topic:   topic,
		groupID: groupID,
		ready:   make(chan struct{}),
	}, nil
}

// Start begins consuming and returns once the group session is ready.
func (c *Consumer) Start(ctx context.Context) error {
	h := &sessionHandler{consumer: c}

	go func() {
		for {
			if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
				if err == context.Canceled {
					return
				}
				log.Printf("Kafka consume error: %v", err)
			}
			if ctx.Err() != nil {
				return
			}
			c.ready = make(chan struct{})
		}
	}()

	<-c.ready
	log.Printf("Kafka consumer started (group: %s, topic: %s)", c.groupID, c.topic)

	go func() {
		for err := range c.group.Errors() {
			log.Printf("Kafka consumer error: %v", err)
		}
	}()
	return nil
}

// Close shuts down the consumer group client.
func (c *Consumer) Close() error {
	return c.group.Close()
}

// RunWithShutdown starts the consumer and blocks until SIGINT/SIGTERM,
// giving in-flight processing a moment to finish before closing.
func (c *Consumer) RunWithShutdown() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := c.Start(ctx); err != nil {
		return err
	}

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigterm:
		log.Println("Received termination signal")
	case <-ctx.Done():
	}

	cancel()
	time.Sleep(2 * time.Second)
	return c.Close()
}

// sessionHandler implements sarama.ConsumerGroupHandler.
type sessionHandler struct {
	consumer *Consumer
}

func (h *sessionHandler) Setup(sarama.ConsumerGroupSession) error {
	close(h.consumer.ready)
	return nil
}

func (h *sessionHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *sessionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			log.Printf("Received job message: partition=%d offset=%d", message.Partition, message.Offset)
			if err := h.consumer.handler(session.Context(), message.Value); err != nil {
				log.Printf("Job handling failed (message left unmarked): %v", err)
				continue
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// Brokers parses the broker list from KAFKA_BOOTSTRAP_SERVERS.
// An empty value means Kafka dispatch is not configured.
func Brokers() []string {
	v := strings.TrimSpace(os.Getenv("KAFKA_BOOTSTRAP_SERVERS"))
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

// Topic returns the generation-request topic name.
func Topic() string {
	if t := os.Getenv("KAFKA_TOPIC_VIDEO_REQUESTS"); t != "" {
		return t
	}
	return "video-generation-requests"
}

// GroupID returns the worker consumer group id.
func GroupID() string {
	if g := os.Getenv("KAFKA_CONSUMER_GROUP_ID"); g != "" {
		return g
	}
	return "kidreel-worker-group"
}
