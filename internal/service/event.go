package service

import (
	"context"
	"log"
	"time"

	"Simple_Twitter/internal/pkg"
)

// EventPublisher 社交事件发布器。尽力而为：每次写库成功后异步发一条，
// kafka 不可用只记日志，绝不影响主流程。
type EventPublisher struct {
	stream  *pkg.EventWriter
	timeout time.Duration
}

func NewEventPublisher(stream *pkg.EventWriter) *EventPublisher {
	return &EventPublisher{
		stream:  stream,
		timeout: 5 * time.Second,
	}
}

func (p *EventPublisher) Publish(event string, actorID, subjectID uint64) {
	if p == nil || p.stream == nil {
		return
	}
	ev := pkg.NewSocialEvent(event, actorID, subjectID)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		if err := p.stream.WriteEvent(ctx, ev); err != nil {
			log.Printf("event publish %s err: %v", event, err)
		}
	}()
}
