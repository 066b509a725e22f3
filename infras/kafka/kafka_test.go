package kafka_test

import (
	"context"
	"encoding/json"
	"testing"

	"stayhub/config"
	"stayhub/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availabilityChanged struct {
	RoomTypeID string   `json:"room_type_id"`
	Dates      []string `json:"dates"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:   "rt-1",
		Value: availabilityChanged{RoomTypeID: "rt-1", Dates: []string{"2025-02-01"}},
	}

	msg, err := message.ToKafkaMessage("availability.changed")
	require.NoError(t, err)
	assert.Equal(t, "availability.changed", msg.Topic)
	assert.Equal(t, []byte("rt-1"), msg.Key)

	var decoded availabilityChanged
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, message.Value, decoded)
}

func TestMessage_UnmarshalableValue(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage("topic")
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	client := kafka.New(cfg)

	assert.NoError(t, client.SendMessages(context.Background(), "availability.changed", kafka.Message{Key: "rt-1"}))
	assert.NoError(t, client.Close())
}
