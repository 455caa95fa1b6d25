package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"chiclon/config"
	"chiclon/infras/otel"
	"chiclon/shared/constant"
)

const writeTimeout = 10 * time.Second

var ErrNotConfigured = errors.New("kafka brokers are not configured")

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

type Client interface {
	Configured() bool
	SendMessages(ctx context.Context, messages ...Message) (err error)
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
	topic  string
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Client {
	kafkaCfg := config.External.Kafka

	if len(kafkaCfg.Brokers) == 0 {
		log.Warn().Msg("No Kafka brokers configured, kafka backend is disabled")

		return &kafkaClientImpl{topic: kafkaCfg.Topic, otel: otel}
	}

	transport := &kafkaGo.Transport{}

	if kafkaCfg.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: kafkaCfg.SASL.Username,
			Password: kafkaCfg.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(kafkaCfg.Brokers...),
		Topic:                  kafkaCfg.Topic,
		Transport:              transport,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafkaGo.RequireOne,
		WriteTimeout:           writeTimeout,
	}

	log.Info().Strs("brokers", kafkaCfg.Brokers).Str("topic", kafkaCfg.Topic).Msg("Kafka client initialized")

	return NewWithWriter(writer, otel)
}

// NewWithWriter wraps an existing writer. The writer's Topic is used for every message.
func NewWithWriter(writer *kafkaGo.Writer, otel otel.Otel) Client {
	return &kafkaClientImpl{
		writer: writer,
		topic:  writer.Topic,
		otel:   otel,
	}
}

func (k *kafkaClientImpl) Configured() bool {
	return k.writer != nil
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".SendMessages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if k.writer == nil {
		return ErrNotConfigured
	}

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", k.topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	scope.SetAttributes(map[string]any{
		"kafka.topic":    k.topic,
		"kafka.messages": len(msgs),
	})

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", k.topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", k.topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	if k.writer == nil {
		return nil
	}

	return k.writer.Close() //nolint:wrapcheck
}
