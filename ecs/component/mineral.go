package component

import "fmt"

// MineralKind enumerates the collectibles the spawner can create.
type MineralKind int

const (
	MineralCopper MineralKind = iota
	MineralSilver
	MineralGold
)

var mineralKinds = []MineralKind{MineralCopper, MineralSilver, MineralGold}

func MineralKinds() []MineralKind {
	return append([]MineralKind(nil), mineralKinds...)
}

// Points is the score a single collected mineral is worth.
func (k MineralKind) Points() int {
	switch k {
	case MineralCopper:
		return 5
	case MineralSilver:
		return 10
	case MineralGold:
		return 20
	default:
		return 0
	}
}

func (k MineralKind) String() string {
	switch k {
	case MineralCopper:
		return "copper"
	case MineralSilver:
		return "silver"
	case MineralGold:
		return "gold"
	default:
		return fmt.Sprintf("mineral(%d)", int(k))
	}
}

func ParseMineralKind(s string) (MineralKind, error) {
	for _, k := range mineralKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown mineral %q", s)
}

type Mineral struct {
	Kind MineralKind
}

var MineralComponent = NewComponent[Mineral]()
