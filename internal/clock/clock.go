package clock

import "time"

// Clock abstracts time for components whose behavior depends on it, so the
// rate-limit window can be tested with a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// NewSystem returns a Clock backed by the wall clock.
func NewSystem() Clock {
	return systemClock{}
}
