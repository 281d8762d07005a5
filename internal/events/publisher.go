// Package events publishes account events to Kafka.
package events

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafka.Writer used by Publisher.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes account events as JSON messages keyed by account id.
// A Publisher without a writer drops events.
type Publisher struct {
	writer Writer
	now    func() time.Time
}

// NewKafkaWriter creates a writer for topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// NewPublisher creates a Publisher. w may be nil.
func NewPublisher(w Writer) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

// Publish sends an event of eventType about account.
func (p *Publisher) Publish(ctx context.Context, eventType string, account *models.Account) error {
	if p.writer == nil {
		logger.Log.Debugw("event publishing disabled", "type", eventType, "account_id", account.ID)
		return nil
	}

	event := models.AccountEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		AccountID: account.ID,
		Email:     account.Email,
		Timestamp: p.now().Unix(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(account.ID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "type", eventType, "account_id", account.ID, "error", err)
		return err
	}

	logger.Log.Infow("event published", "type", eventType, "event_id", event.EventID, "account_id", account.ID)
	return nil
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
