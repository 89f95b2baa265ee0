package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrToUint64(t *testing.T) {
	assert.Equal(t, uint64(123), StrToUint64("123"))
	assert.Equal(t, uint64(0), StrToUint64("abc"))
	assert.Equal(t, uint64(456), StrToUint64(float64(456)))
	assert.Equal(t, uint64(0), StrToUint64(nil))
	assert.Equal(t, uint64(0), StrToUint64(true))
}

func TestToCanalMessage(t *testing.T) {
	payload := CanalMessage{
		Table: "likes",
		Type:  INSERT,
		Data: []map[string]interface{}{
			{"content_id": "42", "user_id": "7"},
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	msg, err := ToCanalMessage(&sarama.ConsumerMessage{Value: raw})
	require.NoError(t, err)
	assert.Equal(t, "likes", msg.Table)
	assert.Equal(t, uint64(42), StrToUint64(msg.Data[0]["content_id"]))
}

func TestToCanalMessageEmptyData(t *testing.T) {
	raw, err := json.Marshal(CanalMessage{Table: "likes", Type: UPDATE})
	require.NoError(t, err)

	_, err = ToCanalMessage(&sarama.ConsumerMessage{Value: raw})
	assert.Error(t, err)
}
