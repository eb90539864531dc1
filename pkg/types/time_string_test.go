package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "morning", input: "06:00"},
		{name: "last minute of day", input: "23:59"},
		{name: "midnight", input: "00:00"},
		{name: "single digit hour", input: "6:00", wantErr: true},
		{name: "24 hours", input: "24:00", wantErr: true},
		{name: "minutes overflow", input: "10:60", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "with seconds", input: "10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("13:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, minutes)

	hour, minute, err := TimeString("08:05").Clock()
	require.NoError(t, err)
	assert.Equal(t, 8, hour)
	assert.Equal(t, 5, minute)
}

func TestNewTimeString(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 7, 59, 0, time.UTC)
	assert.Equal(t, TimeString("09:07"), NewTimeString(at))
	assert.True(t, TimeString("").IsZero())
}
