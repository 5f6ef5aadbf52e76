package service

import (
	"Suivi/config"
	"Suivi/pkg/log"
	"Suivi/pkg/rocketmq"
	"Suivi/pkg/snowflake"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

type Event string

const (
	EventQRGenerated       Event = "qr_generated"
	EventPageViewed        Event = "page_viewed"
	EventMessengerRedirect Event = "messenger_redirect"
	EventFallbackRedirect  Event = "fallback_redirect"
)

func (e Event) Valid() bool {
	switch e {
	case EventQRGenerated, EventPageViewed, EventMessengerRedirect, EventFallbackRedirect:
		return true
	}
	return false
}

var _ IAnalyticsService = (*AnalyticsService)(nil)

type IAnalyticsService interface {
	// Track never blocks the caller and never reports failure.
	Track(ctx context.Context, event Event, fields map[string]string)
}

type AnalyticsService struct {
	Config   *config.Config
	Producer *rocketmq.Rocketmq
}

type eventPayload struct {
	ID     int64             `json:"id"`
	Event  Event             `json:"event"`
	At     time.Time         `json:"at"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (s *AnalyticsService) Track(ctx context.Context, event Event, fields map[string]string) {
	if !event.Valid() {
		log.L.Warn("unknown analytics event", zap.String("event", string(event)))
		return
	}
	if !s.enabled() {
		log.L.Debug("analytics event", zap.String("event", string(event)), zap.Any("fields", fields))
		return
	}

	// the request context is cancelled once the response is written
	ctx = context.WithoutCancel(ctx)
	go func() {
		var pc panics.Catcher
		pc.Try(func() { s.publish(ctx, event, fields) })
		if r := pc.Recovered(); r != nil {
			log.L.Error("analytics publish panicked", zap.String("event", string(event)), zap.String("panic", r.String()))
		}
	}()
}

func (s *AnalyticsService) enabled() bool {
	return s.Config.Production() && s.Producer != nil
}

func (s *AnalyticsService) publish(ctx context.Context, event Event, fields map[string]string) {
	p := eventPayload{
		ID:     snowflake.GenID(),
		Event:  event,
		At:     time.Now().UTC(),
		Fields: fields,
	}
	body, err := json.Marshal(p)
	if err != nil {
		log.L.Warn("analytics marshal failed", zap.Error(err))
		return
	}
	if err := s.Producer.SendAsync(ctx, string(event), strconv.FormatInt(p.ID, 10), body); err != nil {
		log.L.Warn("analytics publish failed", zap.String("event", string(event)), zap.Error(err))
	}
}
