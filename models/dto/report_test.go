package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/report_service/myErrors"
)

func TestParseIntParam(t *testing.T) {
	v, err := ParseIntParam("TopAuthors", "n", "", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = ParseIntParam("TopAuthors", "n", " 12 ", 5)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	// 范围由服务层校验
	v, err = ParseIntParam("TopAuthors", "n", "-3", 5)
	require.NoError(t, err)
	assert.Equal(t, -3, v)

	_, err = ParseIntParam("TopAuthors", "n", "five", 5)
	require.Error(t, err)
	assert.True(t, myErrors.IsValidation(err))
}

func TestParseTruncatedIntParam(t *testing.T) {
	cases := map[string]int{"": 10, "2.7": 2, "-0.5": 0, " 7 ": 7, "1e9": 1000000000, "-2.9": -2}
	for raw, want := range cases {
		v, err := ParseTruncatedIntParam("LatestComments", "limit", raw, 10)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}
	for _, raw := range []string{"ten", "NaN", "Inf"} {
		_, err := ParseTruncatedIntParam("LatestComments", "limit", raw, 10)
		require.Error(t, err, raw)
		assert.True(t, myErrors.IsValidation(err), raw)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("UsersCreatedBetween", "start", "2024-03-01")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	got, err = ParseDate("UsersCreatedBetween", "start", "2024-03-01 10:20:30")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)))

	got, err = ParseDate("UsersCreatedBetween", "start", "2024-03-01T10:20:30+08:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 2, 20, 30, 0, time.UTC)))
}

func TestParseDate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "yesterday", "2024-13-40"} {
		_, err := ParseDate("UsersCreatedBetween", "end", raw)
		require.Error(t, err, raw)
		assert.True(t, myErrors.IsValidation(err), raw)
	}
}
