package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(hour, min int) time.Time {
	return time.Date(2026, time.March, 9, hour, min, 0, 0, time.UTC)
}

func slot(t SlotType, startedAt time.Time) Slot {
	return Slot{Type: t, StartedAt: startedAt}
}

func TestDeriveStatus(t *testing.T) {
	working := []Slot{slot(SlotStart, day(9, 0))}

	cases := []struct {
		name  string
		slots []Slot
		ctx   DayContext
		want  SlotType
	}{
		{"empty day is ready", nil, DayContext{}, SlotReady},
		{"latest slot wins", []Slot{slot(SlotStart, day(9, 0)), slot(SlotPause, day(12, 0))}, DayContext{}, SlotPause},
		{"out of order input is sorted", []Slot{slot(SlotPause, day(12, 0)), slot(SlotStart, day(9, 0))}, DayContext{}, SlotPause},
		{"holiday overrides slots", working, DayContext{IsHoliday: true}, SlotHoliday},
		{"non working day overrides slots", working, DayContext{IsNonWorkingDay: true}, SlotNonWorkingDay},
		{"leave wins over holiday", working, DayContext{IsHoliday: true, IsLeaveDay: true}, SlotLeaveDay},
		{"holiday wins over non working", nil, DayContext{IsHoliday: true, IsNonWorkingDay: true}, SlotHoliday},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.slots, tc.ctx))
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[SlotType][]SlotType{
		SlotReady:  {SlotStart},
		SlotStart:  {SlotPause, SlotEnd},
		SlotPause:  {SlotResume, SlotEnd},
		SlotResume: {SlotPause, SlotEnd},
	}

	states := []SlotType{SlotReady, SlotStart, SlotPause, SlotResume, SlotEnd, SlotHoliday, SlotNonWorkingDay, SlotLeaveDay}
	actions := []SlotType{SlotStart, SlotPause, SlotResume, SlotEnd}

	for _, from := range states {
		for _, action := range actions {
			want := false
			for _, ok := range allowed[from] {
				if ok == action {
					want = true
				}
			}
			assert.Equal(t, want, CanTransition(from, action), "%s -> %s", from, action)
		}
	}
}

func TestWorkedDuration(t *testing.T) {
	// 09:00 start, 12:00 pause, 13:00 resume, 17:00 end = 7 hours.
	slots := []Slot{
		slot(SlotStart, day(9, 0)),
		slot(SlotPause, day(12, 0)),
		slot(SlotResume, day(13, 0)),
		slot(SlotEnd, day(17, 0)),
	}
	assert.Equal(t, 7*time.Hour, WorkedDuration(slots, day(23, 0)))
}

func TestWorkedDurationOpenInterval(t *testing.T) {
	slots := []Slot{slot(SlotStart, day(9, 0))}

	// A running interval accrues up to now.
	assert.Equal(t, 90*time.Minute, WorkedDuration(slots, day(10, 30)))

	// Paused time does not accrue.
	slots = append(slots, slot(SlotPause, day(10, 0)))
	assert.Equal(t, time.Hour, WorkedDuration(slots, day(10, 30)))

	// An empty day is zero.
	assert.Equal(t, time.Duration(0), WorkedDuration(nil, day(10, 30)))
}

func TestActiveSince(t *testing.T) {
	started := day(9, 0)
	running := []Slot{slot(SlotStart, started)}

	since := ActiveSince(running, DayContext{})
	if assert.NotNil(t, since) {
		assert.Equal(t, started, *since)
	}

	resumed := day(13, 0)
	slots := append(running, slot(SlotPause, day(12, 0)), slot(SlotResume, resumed))
	since = ActiveSince(slots, DayContext{})
	if assert.NotNil(t, since) {
		assert.Equal(t, resumed, *since)
	}

	assert.Nil(t, ActiveSince(append(slots, slot(SlotEnd, day(17, 0))), DayContext{}))
	assert.Nil(t, ActiveSince(nil, DayContext{}))

	// A calendar override stops the timer no matter the slots.
	assert.Nil(t, ActiveSince(running, DayContext{IsHoliday: true}))
}

func TestSlotTypePredicates(t *testing.T) {
	stored := []SlotType{SlotStart, SlotResume, SlotPause, SlotEnd}
	derived := []SlotType{SlotReady, SlotHoliday, SlotNonWorkingDay, SlotLeaveDay}

	for _, st := range stored {
		assert.True(t, st.IsStored(), "%s", st)
	}
	for _, st := range derived {
		assert.False(t, st.IsStored(), "%s", st)
	}

	assert.True(t, SlotStart.IsActive())
	assert.True(t, SlotResume.IsActive())
	assert.False(t, SlotPause.IsActive())
	assert.False(t, SlotEnd.IsActive())
}

func TestControlsDisabled(t *testing.T) {
	assert.False(t, ControlsDisabled(SlotReady, false))
	assert.False(t, ControlsDisabled(SlotStart, false))
	assert.True(t, ControlsDisabled(SlotEnd, false))
	assert.True(t, ControlsDisabled(SlotHoliday, false))
	assert.True(t, ControlsDisabled(SlotReady, true))
}

func TestClockRequestValidate(t *testing.T) {
	for _, action := range []string{"start", "pause", "resume", "end"} {
		req := ClockRequest{Action: action}
		assert.NoError(t, req.Validate(), "action %s", action)
	}

	req := ClockRequest{Action: "clock-in"}
	assert.Error(t, req.Validate())

	req = ClockRequest{}
	assert.Error(t, req.Validate())
}
