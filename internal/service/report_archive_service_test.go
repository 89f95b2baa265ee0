package service

import (
	"Prism/internal/pkg/consts"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArchiveQuery(t *testing.T) {
	reportType, days, err := normalizeArchiveQuery("creator", 0)
	require.NoError(t, err)
	assert.Equal(t, "creator", reportType)
	assert.Equal(t, consts.DefaultWindowDays, days)

	_, _, err = normalizeArchiveQuery("creator", 15)
	assert.ErrorIs(t, err, ErrWindowInvalid)

	_, _, err = normalizeArchiveQuery("unknown", 7)
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, _, err = normalizeArchiveQuery("", 7)
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, consts.TrendingLimit, clampSize(0))
	assert.Equal(t, consts.TrendingLimit, clampSize(-3))
	assert.Equal(t, consts.TrendingLimit, clampSize(consts.TrendingLimit+1))
	assert.Equal(t, 5, clampSize(5))
}
