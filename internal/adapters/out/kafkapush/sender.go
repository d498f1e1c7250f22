// Package kafkapush publishes push notifications to a Kafka topic keyed by
// recipient, where the mobile delivery pipeline picks them up.
package kafkapush

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// Sender implements the PushSender port on a Kafka writer. Messages are keyed
// by recipient so one user's notifications stay ordered within a partition.
type Sender struct {
	writer *kafka.Writer
}

// NewSender creates a push sender publishing to the given brokers and topic.
func NewSender(brokers []string, topic string) (*Sender, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &Sender{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

// pushMessage is the wire format consumed by the delivery pipeline.
type pushMessage struct {
	UserID  string            `json:"user_id"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
	SentAt  time.Time         `json:"sent_at"`
}

// Send publishes one notification. The dispatcher treats failures as
// best-effort losses, so Send never retries on its own.
func (s *Sender) Send(
	ctx context.Context, userID kernel.UUID, title, message string, data map[string]string,
) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(pushMessage{
		UserID:  userID.String(),
		Title:   title,
		Message: message,
		Data:    data,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(userID.String()),
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (s *Sender) Close() error {
	return s.writer.Close()
}
