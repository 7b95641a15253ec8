package component

import "fmt"

// ObstacleKind enumerates the hazards the spawner can create.
type ObstacleKind int

const (
	ObstacleSpike ObstacleKind = iota
	ObstacleBat
)

var obstacleKinds = []ObstacleKind{ObstacleSpike, ObstacleBat}

func ObstacleKinds() []ObstacleKind {
	return append([]ObstacleKind(nil), obstacleKinds...)
}

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSpike:
		return "spike"
	case ObstacleBat:
		return "bat"
	default:
		return fmt.Sprintf("obstacle(%d)", int(k))
	}
}

func ParseObstacleKind(s string) (ObstacleKind, error) {
	for _, k := range obstacleKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown obstacle %q", s)
}

// Obstacle marks a hazard. Any overlap with the player ends the run.
type Obstacle struct {
	Kind ObstacleKind
}

var ObstacleComponent = NewComponent[Obstacle]()
