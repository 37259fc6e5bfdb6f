package impl

import "time"

// rangeBounds turns optional range endpoints into concrete [from, to)
// bounds. A nil lower bound opens at the unix epoch; a nil upper bound
// closes just after now.
func rangeBounds(from, to *time.Time) (time.Time, time.Time) {
	lower := time.Unix(0, 0).UTC()
	if from != nil {
		lower = *from
	}

	upper := time.Now().UTC().Add(time.Second)
	if to != nil {
		upper = *to
	}

	return lower, upper
}
