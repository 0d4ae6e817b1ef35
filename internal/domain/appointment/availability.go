package appointment

import (
	"fmt"
	"strings"
	"time"
)

// OffCatalogPolicy decides what the resolver does with an appointment whose
// start time is not a catalog slot (e.g. edited by hand to 12:15).
type OffCatalogPolicy string

const (
	OffCatalogIgnore OffCatalogPolicy = "ignore"
	OffCatalogReject OffCatalogPolicy = "reject"
)

func ParseOffCatalogPolicy(s string) OffCatalogPolicy {
	if OffCatalogPolicy(strings.ToLower(strings.TrimSpace(s))) == OffCatalogReject {
		return OffCatalogReject
	}
	return OffCatalogIgnore
}

type SlotAvailability struct {
	Time     string `json:"time"`
	Occupied bool   `json:"occupied"`
}

// ResolveAvailability annotates every catalog slot, in catalog order, with
// whether one of the scheduled start times falls on it.
func ResolveAvailability(
	scheduled []time.Time,
	loc *time.Location,
	policy OffCatalogPolicy,
) ([]SlotAvailability, error) {

	taken := make(map[string]struct{}, len(scheduled))
	for _, at := range scheduled {
		hm := SlotOf(at, loc)
		if !IsCatalogSlot(hm) {
			if policy == OffCatalogReject {
				return nil, fmt.Errorf("%w: %s", ErrOffCatalogAppointment, at.In(loc).Format("2006-01-02 15:04"))
			}
			continue
		}
		taken[hm] = struct{}{}
	}

	slots := make([]SlotAvailability, 0, len(catalog))
	for _, hm := range catalog {
		_, occupied := taken[hm]
		slots = append(slots, SlotAvailability{Time: hm, Occupied: occupied})
	}

	return slots, nil
}

// OffCatalogTimes lists the start times the resolver cannot place on the grid.
func OffCatalogTimes(scheduled []time.Time, loc *time.Location) []time.Time {
	var out []time.Time
	for _, at := range scheduled {
		if !IsCatalogSlot(SlotOf(at, loc)) {
			out = append(out, at)
		}
	}
	return out
}
