package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain date",
			input: "2024-06-01",
			want:  "2024-06-01",
		},
		{
			name:  "full timestamp truncates",
			input: "2024-06-01T15:04:05Z",
			want:  "2024-06-01",
		},
		{
			name:  "surrounding whitespace",
			input: " 2024-06-01 ",
			want:  "2024-06-01",
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "wrong order",
			input:   "01-06-2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.June, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded.Time))
}

func TestDateYearMonth(t *testing.T) {
	assert.Equal(t, "2024-06", NewDate(2024, time.June, 1).YearMonth())
	assert.Equal(t, "2023-12", NewDate(2023, time.December, 31).YearMonth())
}

func TestTransactionAmountCoercion(t *testing.T) {
	// Legacy exports stored amounts as strings; both forms must decode to
	// the same numeric value.
	var fromString Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Coffee","amount":"4.50"}`), &fromString))

	var fromNumber Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Coffee","amount":4.5}`), &fromNumber))

	assert.True(t, fromString.Amount.Equal(fromNumber.Amount))
	assert.Equal(t, "4.5", fromString.Amount.String())
}
