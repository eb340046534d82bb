package attendance

import (
	"sort"
	"time"
)

// DeriveStatus computes the display status for a day from its ordered slot
// list plus calendar context. Calendar overrides win over any slot history;
// an empty day is READY; otherwise the latest slot's type is the status.
func DeriveStatus(slots []Slot, day DayContext) SlotType {
	switch {
	case day.IsLeaveDay:
		return SlotLeaveDay
	case day.IsHoliday:
		return SlotHoliday
	case day.IsNonWorkingDay:
		return SlotNonWorkingDay
	}

	if len(slots) == 0 {
		return SlotReady
	}

	ordered := sortedByStart(slots)
	return ordered[len(ordered)-1].Type
}

// CanTransition reports whether action is a legal next event given the
// current derived status. Calendar-terminal statuses and END reject
// everything.
func CanTransition(from SlotType, action SlotType) bool {
	if from.IsTerminal() {
		return false
	}

	switch action {
	case SlotStart:
		return from == SlotReady
	case SlotPause:
		return from == SlotStart || from == SlotResume
	case SlotResume:
		return from == SlotPause
	case SlotEnd:
		return from == SlotStart || from == SlotResume || from == SlotPause
	}
	return false
}

// WorkedDuration sums the [START/RESUME, PAUSE/END) intervals of a day.
// Paused stretches are excluded. A still-open active interval accrues up to
// now, so the result must be recomputed on every snapshot rather than
// extrapolated.
func WorkedDuration(slots []Slot, now time.Time) time.Duration {
	var total time.Duration
	var openedAt *time.Time

	for _, slot := range sortedByStart(slots) {
		switch slot.Type {
		case SlotStart, SlotResume:
			if openedAt == nil {
				t := slot.StartedAt
				openedAt = &t
			}
		case SlotPause, SlotEnd:
			if openedAt != nil {
				total += slot.StartedAt.Sub(*openedAt)
				openedAt = nil
			}
		}
	}

	if openedAt != nil && now.After(*openedAt) {
		total += now.Sub(*openedAt)
	}

	return total
}

// ActiveSince returns the start of the currently running interval, or nil
// when the timer is not running.
func ActiveSince(slots []Slot, day DayContext) *time.Time {
	if !DeriveStatus(slots, day).IsActive() {
		return nil
	}

	ordered := sortedByStart(slots)
	last := ordered[len(ordered)-1]
	t := last.StartedAt
	return &t
}

// ControlsDisabled reports whether clock controls must be disabled: the day
// is over or calendar-terminal, or a same-day time edit is already pending.
func ControlsDisabled(status SlotType, hasPendingEdit bool) bool {
	return status.IsTerminal() || hasPendingEdit
}

func sortedByStart(slots []Slot) []Slot {
	ordered := make([]Slot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartedAt.Before(ordered[j].StartedAt)
	})
	return ordered
}
