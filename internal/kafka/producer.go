package kafka

import (
	"encoding/json"

	"github.com/IBM/sarama"
)

// MessageProducer publishes durable chat messages to Kafka for downstream
// consumers (archival, analytics). Publishing is decoupled from both the
// database write and the live websocket push.
type MessageProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewMessageProducer(brokers []string, topic string) (*MessageProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Version = sarama.V2_0_0_0
	cfg.ClientID = "cafe-meet-up-backend"

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &MessageProducer{producer: producer, topic: topic}, nil
}

// Publish sends one message event keyed by match id, so all messages of a
// conversation land on the same partition in order.
func (p *MessageProducer) Publish(key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (p *MessageProducer) Close() error {
	return p.producer.Close()
}
