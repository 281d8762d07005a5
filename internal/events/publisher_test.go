package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockWriter(ctrl)
	p := NewPublisher(writer)
	p.now = func() time.Time { return time.Unix(1700000000, 0) }

	account := &models.Account{ID: 42, Username: "alice123", Email: "a@x.com"}

	var got kafka.Message
	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			got = msgs[0]
			return nil
		})

	require.NoError(t, p.Publish(context.Background(), models.EventAccountRegistered, account))

	assert.Equal(t, "42", string(got.Key))
	require.Len(t, got.Headers, 1)
	assert.Equal(t, models.EventAccountRegistered, string(got.Headers[0].Value))

	var event models.AccountEvent
	require.NoError(t, json.Unmarshal(got.Value, &event))
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, models.EventAccountRegistered, event.Type)
	assert.Equal(t, int64(42), event.AccountID)
	assert.Equal(t, "a@x.com", event.Email)
	assert.Equal(t, int64(1700000000), event.Timestamp)
	assert.NotContains(t, string(got.Value), "password")
}

func TestPublisher_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	err := NewPublisher(writer).Publish(context.Background(), models.EventAccountLoggedIn, &models.Account{ID: 1})
	assert.EqualError(t, err, "broker down")
}

func TestPublisher_Disabled(t *testing.T) {
	p := NewPublisher(nil)
	assert.NoError(t, p.Publish(context.Background(), models.EventProfileUpdated, &models.Account{ID: 1}))
	assert.NoError(t, p.Close())
}

func TestPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockWriter(ctrl)
	writer.EXPECT().Close().Return(nil)

	assert.NoError(t, NewPublisher(writer).Close())
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, "account-events")
	assert.Equal(t, "account-events", w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
}
