package domain

import "time"

// IsRecent reports whether ts falls within the trailing windowHours,
// evaluated against now. ts must be an ISO-8601 timestamp with an offset
// (a trailing Z is accepted as UTC); anything unparseable is simply not
// recent. The check is a signed difference, so a timestamp ahead of now
// also counts as recent — clock skew between us and the source must not
// drop fresh records.
func IsRecent(ts string, windowHours int, now time.Time) bool {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return false
	}
	return now.Sub(t) <= time.Duration(windowHours)*time.Hour
}
