package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags(t *testing.T) {
	tags := ExtractTags("launch day #golang #分析 check it out #golang #data.")
	assert.Equal(t, []string{"golang", "分析", "data"}, tags)

	assert.Empty(t, ExtractTags("no tags here"))
	assert.Empty(t, ExtractTags("lone hash # nothing"))
}

func TestGetMidnight(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 30, 0, time.UTC)
	midnight := GetMidnight(now)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), midnight)

	// 临界：已经是零点也推进到次日
	atMidnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), GetMidnight(atMidnight))
}

func TestStrToUint64(t *testing.T) {
	assert.Equal(t, uint64(42), StrToUint64("42"))
	assert.Equal(t, uint64(0), StrToUint64("abc"))
	assert.Equal(t, uint64(0), StrToUint64("-1"))
	assert.Equal(t, uint64(0), StrToUint64(""))
}

func TestStrSliceToUInt64Slice(t *testing.T) {
	result := StrSliceToUInt64Slice([]string{"1", "x", "3", ""})
	assert.Equal(t, []uint64{1, 3}, result)

	assert.Empty(t, StrSliceToUInt64Slice(nil))
}
