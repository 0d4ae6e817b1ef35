package appointment

import "time"

type ScheduledTime struct {
	ID uint
	At time.Time
}

// CheckConflict rejects proposed when another appointment starts at the same
// minute. Only identical starts collide: partial overlaps are not detected,
// which holds as long as every start sits on the 30 minute grid.
//
// excludeID skips the appointment being edited; zero excludes nothing.
func CheckConflict(proposed time.Time, existing []ScheduledTime, excludeID uint) error {
	p := proposed.Truncate(time.Minute)

	for _, st := range existing {
		if excludeID != 0 && st.ID == excludeID {
			continue
		}
		if st.At.Truncate(time.Minute).Equal(p) {
			return &SlotConflictError{At: proposed}
		}
	}

	return nil
}
