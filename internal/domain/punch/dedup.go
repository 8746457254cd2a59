package punch

import "time"

// DefaultDedupWindow is the ingestion de-duplication window: a punch
// within this distance of an existing one for the same employee, device
// and kind is a duplicate.
const DefaultDedupWindow = 5 * time.Minute

// IsDuplicate reports whether candidate duplicates any of the already
// stored events. It operates on loaded values only, independent of the
// storage layer.
func IsDuplicate(existing []Event, candidate Event, window time.Duration) bool {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	for _, e := range existing {
		if e.EmployeeID != candidate.EmployeeID || e.DeviceID != candidate.DeviceID || e.Kind != candidate.Kind {
			continue
		}
		diff := candidate.Timestamp.Sub(e.Timestamp)
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			return true
		}
	}
	return false
}
