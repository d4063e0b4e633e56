// Package notify publishes voucher grant events for the mailer to pick up.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"

	"github.com/IBM/sarama"
)

const eventTypeVoucherGranted = "voucher.granted"

type envelope struct {
	Type       string                       `json:"type"`
	OccurredAt time.Time                    `json:"occurred_at"`
	Data       commands.VoucherGrantedEvent `json:"data"`
}

type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaNotifier(cfg config.KafkaConfig) (*KafkaNotifier, error) {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 3
	sc.Producer.Return.Successes = true
	sc.Net.DialTimeout = 3 * time.Second
	sc.Net.WriteTimeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaNotifierWithProducer(producer, cfg.Topic), nil
}

func NewKafkaNotifierWithProducer(producer sarama.SyncProducer, topic string) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic}
}

// NotifyVoucherGranted keys the message by user so one user's events stay ordered.
func (n *KafkaNotifier) NotifyVoucherGranted(ctx context.Context, event commands.VoucherGrantedEvent) error {
	payload, err := json.Marshal(envelope{
		Type:       eventTypeVoucherGranted,
		OccurredAt: event.GrantedAt,
		Data:       event,
	})
	if err != nil {
		return fmt.Errorf("failed to encode voucher grant event: %w", err)
	}

	partition, offset, err := n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(event.UserID.String()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventTypeVoucherGranted)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish voucher grant event: %w", err)
	}

	slog.Debug("voucher grant event published",
		"topic", n.topic,
		"partition", partition,
		"offset", offset,
		"code", event.Code)
	return nil
}

func (n *KafkaNotifier) Close() error {
	if n == nil || n.producer == nil {
		return nil
	}
	return n.producer.Close()
}

// LogNotifier stands in when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) NotifyVoucherGranted(_ context.Context, event commands.VoucherGrantedEvent) error {
	slog.Info("voucher granted (no broker configured)", "code", event.Code, "user_id", event.UserID)
	return nil
}
