package schedule

import (
	"testing"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  domain.ShiftType
	}{
		{"opener ending at day cutoff", "09:00", "18:00", domain.ShiftDay},
		{"morning shift", "06:00", "14:00", domain.ShiftDay},
		{"closer past late cutoff", "16:00", "23:00", domain.ShiftNight},
		{"overnight close", "22:00", "06:00", domain.ShiftNight},
		{"late start overnight", "17:00", "01:00", domain.ShiftNight},
		{"spans both dayparts", "14:00", "19:00", domain.ShiftBoth},
		{"spans to late cutoff", "11:00", "22:00", domain.ShiftBoth},
		{"evening within cutoff", "15:30", "21:00", domain.ShiftNight},
		{"boundary start never-ending", "15:00", "15:00", domain.ShiftDay}, // fallback branch, pinned policy
		{"boundary start overnight", "15:00", "02:00", domain.ShiftDay},   // fallback branch, pinned policy
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.start, tt.end))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("14:00", "19:00")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify("14:00", "19:00"))
	}
}
