//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/notify"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grantEvent() commands.VoucherGrantedEvent {
	return commands.VoucherGrantedEvent{
		VoucherID: uuid.New(),
		Code:      "LOYAL15",
		Type:      "percentage",
		Value:     15,
		UserID:    uuid.New(),
		Email:     "ada@example.com",
		Name:      "Ada",
		GrantedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestKafkaNotifier_NotifyVoucherGranted(t *testing.T) {
	t.Run("publishes a keyed envelope", func(t *testing.T) {
		event := grantEvent()
		mp := mocks.NewSyncProducer(t, sarama.NewConfig())
		mp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			assert.Equal(t, "voucher.granted", msg.Topic)

			key, err := msg.Key.Encode()
			require.NoError(t, err)
			assert.Equal(t, event.UserID.String(), string(key))

			raw, err := msg.Value.Encode()
			require.NoError(t, err)
			var body struct {
				Type string                       `json:"type"`
				Data commands.VoucherGrantedEvent `json:"data"`
			}
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, "voucher.granted", body.Type)
			assert.Equal(t, event, body.Data)
			return nil
		})
		n := notify.NewKafkaNotifierWithProducer(mp, "voucher.granted")

		require.NoError(t, n.NotifyVoucherGranted(context.Background(), event))
		require.NoError(t, n.Close())
	})

	t.Run("surfaces broker failures", func(t *testing.T) {
		mp := mocks.NewSyncProducer(t, sarama.NewConfig())
		mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		n := notify.NewKafkaNotifierWithProducer(mp, "voucher.granted")

		err := n.NotifyVoucherGranted(context.Background(), grantEvent())

		require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		_ = n.Close()
	})
}

func TestNewKafkaNotifier_Unreachable(t *testing.T) {
	_, err := notify.NewKafkaNotifier(config.KafkaConfig{Brokers: []string{"localhost:0"}, Topic: "voucher.granted"})
	assert.Error(t, err)
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, notify.LogNotifier{}.NotifyVoucherGranted(context.Background(), grantEvent()))
}
