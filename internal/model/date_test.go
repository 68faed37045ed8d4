package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaopub/contratos-service/internal/model"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "Valid", raw: "2024-03-01", want: "2024-03-01"},
		{name: "LeapDay", raw: "2024-02-29", want: "2024-02-29"},
		{name: "MissingDay", raw: "2024-03", wantErr: true},
		{name: "Timestamp", raw: "2024-03-01T10:00:00Z", wantErr: true},
		{name: "Garbage", raw: "not-a-date", wantErr: true},
		{name: "Empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseDate(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_DaysUntil(t *testing.T) {
	from := model.NewDate(2024, time.March, 1)

	assert.Equal(t, 0, model.NewDate(2024, time.March, 1).DaysUntil(from))
	assert.Equal(t, 9, model.NewDate(2024, time.March, 10).DaysUntil(from))
	assert.Equal(t, -1, model.NewDate(2024, time.February, 29).DaysUntil(from))
	assert.Equal(t, 366, model.NewDate(2025, time.March, 2).DaysUntil(from))
}

func TestDate_AddDays(t *testing.T) {
	d := model.NewDate(2024, time.December, 30)
	assert.Equal(t, "2025-01-04", d.AddDays(5).String())
	assert.Equal(t, "2024-12-25", d.AddDays(-5).String())

	var zero model.Date
	assert.True(t, zero.AddDays(10).IsZero())
}

func TestDate_JSON(t *testing.T) {
	d := model.NewDate(2023, time.November, 5)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-11-05"`, string(raw))

	var decoded model.Date
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, d.Equal(decoded))

	var empty model.Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())

	var bad model.Date
	assert.Error(t, json.Unmarshal([]byte(`"05/11/2023"`), &bad))
}
