package component

// ScoreLabel is the on-screen score readout.
type ScoreLabel struct {
	Score   int
	Text    string
	Visible bool
	X       float64
	Y       float64

	Scale        float64
	Pulsing      bool
	PulseFrames  int
	PulseElapsed int
}

var ScoreLabelComponent = NewComponent[ScoreLabel]()
