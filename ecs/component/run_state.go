package component

// RunState is the singleton state of the current run.
type RunState struct {
	RunID string
	Tick  int

	Score         int
	GameOver      bool
	GameOverTick  int
	PhysicsPaused bool

	// RestartArmed is set once per game over; the first pointer press on a
	// later tick consumes it and raises RestartRequested.
	RestartArmed     bool
	RestartRequested bool
	Restarts         int
}

var RunStateComponent = NewComponent[RunState]()
