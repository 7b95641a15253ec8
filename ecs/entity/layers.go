package entity

// Render layer indices, lowest first.
const (
	layerBackground = 0
	layerGround     = 1
	layerMineral    = 2
	layerObstacle   = 3
	layerPlayer     = 4
	layerHUD        = 100
)
