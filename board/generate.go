package board

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
	"golang.org/x/exp/rand"
)

// GenConfig holds board generation parameters.
type GenConfig struct {
	Radius int
	Seed   int64   // 0 picks a random seed
	Scale  float64 // noise frequency; 0 uses the default
}

const defaultNoiseScale = 0.35

// Generate builds a board with terrain assigned from seeded simplex
// noise, so the same seed always yields the same board. The normalized
// noise range is split evenly across the terrain ring.
func Generate(cfg GenConfig) (*Board, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	scale := cfg.Scale
	if scale == 0 {
		scale = defaultNoiseScale
	}

	b, err := New(cfg.Radius, Mountains)
	if err != nil {
		return nil, err
	}

	noise := opensimplex.NewNormalized(seed)
	kinds := Terrains()
	for _, c := range b.Coords() {
		// axial to cartesian so noise distances match the drawn map
		x := (float64(c.Q) + float64(c.R)*0.5) * scale
		y := float64(c.R) * math.Sqrt(3) / 2 * scale

		v := noise.Eval2(x, y)
		idx := int(v * float64(len(kinds)))
		if idx >= len(kinds) {
			idx = len(kinds) - 1
		}
		if err := b.SetTerrain(c, kinds[idx]); err != nil {
			return nil, err
		}
	}
	return b, nil
}
