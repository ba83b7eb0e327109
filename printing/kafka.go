package printing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const printTopic = "print-jobs"

// kafkaSpooler publishes jobs to the print-jobs topic. A Consumer (same or
// another process) drains the topic and drives the dispatcher, so a slow
// printer never backs up into the HTTP path.
type kafkaSpooler struct {
	writer *kafka.Writer
}

func NewKafkaSpooler(brokers []string) Spooler {
	return &kafkaSpooler{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        printTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (s *kafkaSpooler) Enqueue(ctx context.Context, job Job) {
	payload, err := json.Marshal(job)
	if err != nil {
		logger.Error().Err(err).Str("job_id", job.ID).Msg("marshal print job")
		return
	}
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("print-%s-%s", job.Type, job.ID)),
		Value: payload,
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Str("job_id", job.ID).Msg("publish print job")
	}
}

func (s *kafkaSpooler) Close() error { return s.writer.Close() }

// Consumer reads print jobs back off the topic and hands them to the
// dispatcher.
type Consumer struct {
	reader     *kafka.Reader
	dispatcher Dispatcher
	timeout    time.Duration
}

func NewConsumer(brokers []string, d Dispatcher, timeout time.Duration) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    printTopic,
			GroupID:  "print-worker",
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
		dispatcher: d,
		timeout:    timeout,
	}
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error().Err(err).Msg("read print job")
			continue
		}

		var job Job
		if err := json.Unmarshal(msg.Value, &job); err != nil {
			logger.Error().Err(err).Msg("unmarshal print job")
			continue
		}

		jobCtx, cancel := context.WithTimeout(ctx, c.timeout)
		if err := c.dispatcher.Dispatch(jobCtx, job); err != nil {
			logger.Error().Err(err).Str("job_id", job.ID).Msg("print dispatch failed")
		}
		cancel()
	}
}

func (c *Consumer) Close() error { return c.reader.Close() }
