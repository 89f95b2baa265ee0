package kafka

import (
	"Prism/internal/pkg/es"
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScoreRepo struct {
	deleted []uint64
}

func (f *fakeScoreRepo) IndexContentScore(context.Context, *es.ContentScoreES) error {
	return nil
}

func (f *fakeScoreRepo) SearchByViralStatus(context.Context, string, int, int) ([]*es.ContentScoreES, error) {
	return nil, nil
}

func (f *fakeScoreRepo) TopByQuality(context.Context, int) ([]*es.ContentScoreES, error) {
	return nil, nil
}

func (f *fakeScoreRepo) DeleteContentScore(_ context.Context, contentID uint64) error {
	f.deleted = append(f.deleted, contentID)
	return nil
}

func contentCanalMessage(t *testing.T, table, eventType string, data []map[string]interface{}) *sarama.ConsumerMessage {
	raw, err := json.Marshal(CanalMessage{Table: table, Type: eventType, Data: data})
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Value: raw}
}

func TestContentHandlerDeleteCleansScoreDocs(t *testing.T) {
	scores := &fakeScoreRepo{}
	handler := NewContentHandler(nil, scores)

	msg := contentCanalMessage(t, "content_posts", DELETE, []map[string]interface{}{
		{"id": "42"},
		{"id": "bad"},
		{"id": "77"},
	})

	require.NoError(t, handler.logic(context.Background(), msg))
	assert.Equal(t, []uint64{42, 77}, scores.deleted)
}

func TestContentHandlerIgnoresOtherEvents(t *testing.T) {
	scores := &fakeScoreRepo{}
	handler := NewContentHandler(nil, scores)

	msg := contentCanalMessage(t, "users", DELETE, []map[string]interface{}{{"id": "1"}})
	require.NoError(t, handler.logic(context.Background(), msg))

	msg = contentCanalMessage(t, "content_posts", UPDATE, []map[string]interface{}{{"id": "1"}})
	require.NoError(t, handler.logic(context.Background(), msg))

	assert.Empty(t, scores.deleted)
}
