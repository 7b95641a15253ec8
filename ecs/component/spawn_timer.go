package component

// SpawnTimer is a repeating logical clock measured in ticks.
type SpawnTimer struct {
	Group       string
	PeriodTicks int
	Elapsed     int
	Fired       int
}

// Advance moves the clock by one tick and reports whether it fired.
func (t *SpawnTimer) Advance() bool {
	if t == nil || t.PeriodTicks <= 0 {
		return false
	}
	t.Elapsed++
	if t.Elapsed < t.PeriodTicks {
		return false
	}
	t.Elapsed = 0
	t.Fired++
	return true
}

var SpawnTimerComponent = NewComponent[SpawnTimer]()
