package appointment

import "time"

// SlotDuration is the calendar length of every appointment, whatever the
// service.
const SlotDuration = 30 * time.Minute

var catalog = [...]string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30",
}

// Catalog returns the bookable start times, the same for every day.
func Catalog() []string {
	out := make([]string, len(catalog))
	copy(out, catalog[:])
	return out
}

func IsCatalogSlot(hm string) bool {
	for _, s := range catalog {
		if s == hm {
			return true
		}
	}
	return false
}

// SlotOf formats t as a catalog key ("15:04") in loc.
func SlotOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}
