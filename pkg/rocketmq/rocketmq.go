package rocketmq

import (
	"Suivi/config"
	"Suivi/pkg/log"
	"context"
	"errors"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

type Rocketmq struct {
	RocketmqProducer rocketmq.Producer
	Topic            string
}

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer returns nil outside production or when no name server is configured.
func InitProducer(cfg *config.Config) *Rocketmq {
	mq := cfg.RocketMQ
	if !cfg.Production() || mq == nil || len(mq.NameServer) == 0 || mq.Topic == "" {
		return nil
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(mq.NameServer),
		producer.WithGroupName(mq.Producer.Group),
		producer.WithRetry(mq.Producer.Retry),
	)
	if err != nil {
		log.L.Error("init producer failed", zap.Error(err))
		return nil
	}
	if err = p.Start(); err != nil {
		log.L.Error("start producer failed", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success", zap.String("topic", mq.Topic))

	return &Rocketmq{RocketmqProducer: p, Topic: mq.Topic}
}

// SendAsync publishes without waiting for the broker; delivery failures are only logged.
func (p *Rocketmq) SendAsync(ctx context.Context, tag, key string, body []byte) error {
	if p == nil || p.RocketmqProducer == nil {
		return errors.New("rocketmq producer not initialized")
	}
	msg := primitive.NewMessage(p.Topic, body).WithTag(tag).WithKeys([]string{key})

	return p.RocketmqProducer.SendAsync(ctx, func(_ context.Context, res *primitive.SendResult, err error) {
		if err != nil {
			log.L.Warn("send message failed", zap.String("tag", tag), zap.Error(err))
			return
		}
		log.L.Debug("send message success", zap.String("msg_id", res.MsgID))
	}, msg)
}

func (p *Rocketmq) Shutdown() error {
	if p == nil || p.RocketmqProducer == nil {
		return nil
	}
	return p.RocketmqProducer.Shutdown()
}
