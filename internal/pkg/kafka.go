package pkg

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// SocialEvent 社交事件载荷：actor 对 subject（用户或推文）做了什么
type SocialEvent struct {
	EventTime string `json:"event_time"`
	EventType string `json:"event_type"` // follow / unfollow / like / unlike / tweet / reply
	Actor     uint64 `json:"actor"`
	Subject   uint64 `json:"subject"`
}

func NewSocialEvent(eventType string, actor, subject uint64) SocialEvent {
	return SocialEvent{
		EventTime: time.Now().UTC().Format(time.RFC3339Nano),
		EventType: eventType,
		Actor:     actor,
		Subject:   subject,
	}
}

// EventStreamConfig 社交事件流配置
type EventStreamConfig struct {
	Brokers []string
	Topic   string
}

// EventWriter 把社交事件写进 kafka。消息按 actor 做 key，
// 同一个用户的事件哈希到同一分区，分区内保持顺序。
type EventWriter struct {
	writer *kafka.Writer
}

func NewEventWriter(cfg EventStreamConfig) *EventWriter {
	return &EventWriter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

func (w *EventWriter) Close() error {
	if w == nil || w.writer == nil {
		return nil
	}
	return w.writer.Close()
}

func (w *EventWriter) WriteEvent(ctx context.Context, ev SocialEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(ev.Actor, 10)),
		Value: value,
	})
}
