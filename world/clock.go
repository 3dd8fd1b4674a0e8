package world

// defaultSecondsPerDay compresses an in-game day into 100 real minutes.
const defaultSecondsPerDay = 6000.0

// Clock is the fixed-step day clock. Sibling systems (sky, schedules) query
// the day ratio; the locomotion core itself only advances it.
type Clock struct {
	secondsPerDay float64
	elapsed       float64
}

// NewClock creates a clock with the given day length in seconds.
func NewClock(secondsPerDay float64) *Clock {
	if secondsPerDay <= 0 {
		secondsPerDay = defaultSecondsPerDay
	}
	return &Clock{secondsPerDay: secondsPerDay}
}

// Advance moves the clock forward by dt seconds.
func (c *Clock) Advance(dt float64) {
	if c == nil || dt <= 0 {
		return
	}
	c.elapsed += dt
}

// DayRatio returns the position within the current day in [0, 1).
func (c *Clock) DayRatio() float64 {
	if c == nil || c.secondsPerDay <= 0 {
		return 0
	}
	day := c.elapsed / c.secondsPerDay
	return day - float64(int(day))
}
