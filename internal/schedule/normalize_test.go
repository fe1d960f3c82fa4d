package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMilitary(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"12:00a", "00:00:00"},
		{"12:00p", "12:00:00"},
		{"12:30a", "00:30:00"},
		{"6:30p", "18:30:00"},
		{"9:00a", "09:00:00"},
		{"11:45p", "23:45:00"},
		{"1:15p", "13:15:00"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ToMilitary(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMilitaryRejectsMalformedTokens(t *testing.T) {
	for _, token := range []string{"", "6:30", "6:30pm", "630p", "6:3p", "noon"} {
		t.Run(token, func(t *testing.T) {
			_, err := ToMilitary(token)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, token, fe.Token)
		})
	}
}

func TestDateForDay(t *testing.T) {
	weekStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC) // a Monday

	got, err := DateForDay(weekStart, "Monday")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", got)

	got, err = DateForDay(weekStart, "Sunday")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-08", got)
}

func TestDateForDayCrossesMonthBoundary(t *testing.T) {
	weekStart := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	got, err := DateForDay(weekStart, "Sunday")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-06", got)
}

func TestDateForDayRejectsUnknownDay(t *testing.T) {
	_, err := DateForDay(time.Now(), "Funday")
	assert.Error(t, err)
}
