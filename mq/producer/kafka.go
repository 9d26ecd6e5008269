package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/config"
	"github.com/Xushengqwer/report_service/models/events"
	"github.com/Xushengqwer/report_service/models/vo"
)

// messageWriter 是 kafka.Writer 中生产者用到的部分
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer messageWriter
	logger *zap.Logger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, key string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化 Kafka 事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息", zap.String("topic", topic), zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Kafka 消息发送成功", zap.String("topic", topic))
	}
	return err
}

// SendRankingRefreshedEvent 通知下游作者排行快照已刷新
func (p *KafkaProducer) SendRankingRefreshedEvent(ctx context.Context, snapshot *vo.RankingSnapshotVO) error {
	event := events.RankingRefreshedEvent{
		EventID:     uuid.New().String(),
		Timestamp:   time.Now(),
		GeneratedAt: snapshot.GeneratedAt,
		Size:        len(snapshot.Authors),
	}
	if len(snapshot.Authors) > 0 {
		event.TopAuthorID = snapshot.Authors[0].AuthorID
	}
	return p.SendEvent(ctx, p.topics.RankingRefreshed, event.EventID, event)
}

// Close 关闭底层 writer，刷出缓冲中的消息
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
