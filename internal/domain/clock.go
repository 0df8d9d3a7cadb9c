package domain

import "time"

// Clock abstracts "today" so cycle transitions can be driven
// deterministically in tests and replayed jobs.
type Clock interface {
	Today() time.Time
}

type SystemClock struct{}

func (SystemClock) Today() time.Time {
	return Date(time.Now())
}

// Date truncates t to midnight UTC. All track window math works on
// whole days.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
