package schedule

import (
	"strconv"
	"strings"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

// Cutoffs for shift classification, in minutes since midnight. These
// encode store policy: day deployment ends by 18:00, night deployment
// starts after 15:00, and anything past 22:00 belongs to the closers.
const (
	dayEndCutoff     = 18 * 60
	nightStartCutoff = 15 * 60
	lateEndCutoff    = 22 * 60
)

// Classify maps a shift's start and end times ("HH:mm", 24-hour) to its
// deployment category. An end at or before the start is an overnight
// shift. The rule ladder below is store policy and its branch order is
// load-bearing; do not reorder or merge branches.
//
// Both times must be well-formed "HH:mm"; guaranteeing that is the
// caller's job (the normalizer rejects malformed tokens upstream).
func Classify(startTime, endTime string) domain.ShiftType {
	start := minuteOfDay(startTime)
	end := minuteOfDay(endTime)
	overnight := end <= start

	switch {
	case end <= dayEndCutoff && !overnight:
		return domain.ShiftDay
	case start > nightStartCutoff && (end > lateEndCutoff || overnight):
		return domain.ShiftNight
	case start < nightStartCutoff && end > dayEndCutoff && end <= lateEndCutoff:
		return domain.ShiftBoth
	case start > nightStartCutoff && end <= lateEndCutoff && !overnight:
		return domain.ShiftNight
	default:
		// Reached by boundary-exact inputs such as a 15:00 start with an
		// overnight end. Confirmed as intended policy, pinned by tests.
		return domain.ShiftDay
	}
}

func minuteOfDay(t string) int {
	hh, mm, _ := strings.Cut(t, ":")
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return h*60 + m
}
