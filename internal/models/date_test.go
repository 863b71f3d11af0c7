package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON_AcceptedLayouts(t *testing.T) {
	cases := []string{
		`"2026-03-01T10:30:00Z"`,
		`"2026-03-01T10:30:00"`,
		`"2026-03-01"`,
	}
	for _, c := range cases {
		var d models.Date
		require.NoError(t, json.Unmarshal([]byte(c), &d), c)
		assert.Equal(t, 2026, d.Year(), c)
		assert.Equal(t, time.March, d.Month(), c)
	}
}

func TestDateUnmarshalJSON_NullIsNoop(t *testing.T) {
	var d models.Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDateUnmarshalJSON_Unrecognized(t *testing.T) {
	var d models.Date
	assert.Error(t, json.Unmarshal([]byte(`"03/01/2026"`), &d))
}

func TestDateMarshalJSON_RFC3339(t *testing.T) {
	d := models.NewDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-01T00:00:00Z"`, string(b))
}

func TestParseDate(t *testing.T) {
	d, err := models.ParseDate("2026-03-01")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Day())

	d, err = models.ParseDate("  ")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = models.ParseDate("bogus")
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d models.Date
	now := time.Now()
	require.NoError(t, d.Scan(now))
	assert.Equal(t, now, d.Time)

	var empty models.Date
	require.NoError(t, empty.Scan(nil))
	assert.True(t, empty.IsZero())

	assert.Error(t, d.Scan(42))
}
