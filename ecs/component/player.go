package component

type PlayerPose int

const (
	PoseRun PlayerPose = iota
	PoseDuck
)

func (p PlayerPose) String() string {
	switch p {
	case PoseDuck:
		return "duck"
	default:
		return "run"
	}
}

type Player struct {
	JumpSpeed      float64
	SwipeThreshold float64
	RunHitbox      Hitbox
	DuckHitbox     Hitbox
	RunAnim        string
	DuckAnim       string
	Pose           PlayerPose

	// Swipe tracking. SwipeDown latches until the player is airborne or
	// jumps.
	SwipeActive bool
	SwipeStartY float64
	SwipeDown   bool
}

// HitboxFor returns the collider box for a pose.
func (p *Player) HitboxFor(pose PlayerPose) Hitbox {
	if pose == PoseDuck {
		return p.DuckHitbox
	}
	return p.RunHitbox
}

var PlayerComponent = NewComponent[Player]()
