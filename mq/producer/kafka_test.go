package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/config"
	"github.com/Xushengqwer/report_service/models/events"
	"github.com/Xushengqwer/report_service/models/vo"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaProducer_SendRankingRefreshedEvent(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaProducer{writer: w, logger: zap.NewNop(), topics: config.Topics{RankingRefreshed: "report.ranking.refreshed"}}

	generatedAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	snap := &vo.RankingSnapshotVO{
		GeneratedAt: generatedAt,
		Authors:     []*vo.TopAuthorVO{{AuthorID: "alice", PublishedPostCount: 3}, {AuthorID: "bob", PublishedPostCount: 1}},
	}
	require.NoError(t, p.SendRankingRefreshedEvent(context.Background(), snap))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "report.ranking.refreshed", w.msgs[0].Topic)

	var event events.RankingRefreshedEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &event))
	assert.Equal(t, 2, event.Size)
	assert.Equal(t, "alice", event.TopAuthorID)
	assert.True(t, event.GeneratedAt.Equal(generatedAt))
	assert.Equal(t, event.EventID, string(w.msgs[0].Key))
}

func TestKafkaProducer_SendEvent_WriteError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}
	p := &KafkaProducer{writer: w, logger: zap.NewNop()}

	err := p.SendEvent(context.Background(), "t", "k", map[string]string{"a": "b"})
	assert.EqualError(t, err, "broker down")
}
