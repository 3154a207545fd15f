package board

import "fmt"

// Terrain is one of the kinds on the terrain transformation ring. The
// declaration order is the ring order, and transformation cost is the
// cyclic distance along it.
type Terrain int

const (
	Mountains Terrain = iota
	Forest
	Desert

	terrainCount = 3
)

// Terrains returns all kinds in ring order.
func Terrains() []Terrain {
	return []Terrain{Mountains, Forest, Desert}
}

func (t Terrain) String() string {
	switch t {
	case Mountains:
		return "mountains"
	case Forest:
		return "forest"
	case Desert:
		return "desert"
	}
	return fmt.Sprintf("terrain(%d)", int(t))
}

// ParseTerrain maps a name to its Terrain kind.
func ParseTerrain(s string) (Terrain, error) {
	for _, t := range Terrains() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("cannot parse terrain: unknown kind %q", s)
}

// TransformCost returns the spades needed to reshape from into to: the
// cyclic ring distance, which with three kinds is 0 for the same kind and
// 1 otherwise.
func TransformCost(from, to Terrain) int {
	d := int(from) - int(to)
	if d < 0 {
		d = -d
	}
	return min(d, terrainCount-d)
}
