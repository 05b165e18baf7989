package model

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"
)

// Sampler yields a value in [0,1) for each cell of a seed grid
type Sampler interface {
	Sample(x, y int) float64
}

// UniformSampler draws independent uniform values from an explicit source
type UniformSampler struct {
	r *rand.Rand
}

// NewUniformSampler creates a deterministic sampler using the provided seed
func NewUniformSampler(seed int64) *UniformSampler {
	return &UniformSampler{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewUniformSamplerFrom wraps an existing source
func NewUniformSamplerFrom(r *rand.Rand) *UniformSampler {
	return &UniformSampler{r: r}
}

// Sample ignores the coordinates; each call consumes one draw.
func (s *UniformSampler) Sample(_, _ int) float64 {
	return s.r.Float64()
}

// PerlinSampler maps coherent Perlin noise onto [0,1)
type PerlinSampler struct {
	noise *perlin.Perlin
	scale float64
}

// NewPerlinSampler creates a Perlin sampler. Larger scale means wider blobs.
func NewPerlinSampler(seed int64, scale float64) (*PerlinSampler, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, errors.Wrapf(ErrInvalidScale, "[NewPerlinSampler] scale %v must be > 0", scale)
	}
	// alpha=2, beta=2, n=3 gives terrain-like noise
	return &PerlinSampler{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		scale: scale,
	}, nil
}

// Sample returns the noise at the centre of cell (x, y) remapped from [-1,1]
// to [0,1). Perlin noise is zero on every integer lattice point.
func (s *PerlinSampler) Sample(x, y int) float64 {
	n := s.noise.Noise2D((float64(x)+0.5)/s.scale, (float64(y)+0.5)/s.scale)
	v := (n + 1) / 2
	switch {
	case v < 0:
		return 0
	case v >= 1:
		return math.Nextafter(1, 0)
	}
	return v
}

// GenerateNoise produces a seed grid: a cell is open when its sample is at
// least threshold/100. The outer ring is always wall.
func GenerateNoise(s Sampler, width, height int, threshold float64) (*Grid[bool], error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[GenerateNoise] width=%d height=%d", width, height)
	}
	if math.IsNaN(threshold) || threshold < 0 || threshold > 100 {
		return nil, errors.Wrapf(ErrInvalidThreshold, "[GenerateNoise] threshold %v outside [0,100]", threshold)
	}

	cut := threshold / 100
	g := NewGrid[bool](width, height)
	for y := range height {
		for x := range width {
			g.cells[y][x] = s.Sample(x, y) >= cut
		}
	}

	// Close the boundary
	for x := range width {
		g.cells[0][x] = false
		g.cells[height-1][x] = false
	}
	for y := range height {
		g.cells[y][0] = false
		g.cells[y][width-1] = false
	}

	logger.Debugf("generated %dx%d noise at threshold %.1f: %d open cells",
		width, height, threshold, g.CountAlive(IsOpen))
	return g, nil
}

// ToGraded seeds a graded grid from a binary one: open cells start at
// stateCount, walls at 0
func ToGraded(g *Grid[bool], stateCount int) (*Grid[int], error) {
	if g == nil {
		return nil, errors.Wrap(ErrInvalidDimension, "[ToGraded] nil grid")
	}
	if stateCount < 1 {
		return nil, errors.Wrapf(ErrInvalidState, "[ToGraded] state count must be >= 1, got %d", stateCount)
	}
	out := NewGrid[int](g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				out.cells[y][x] = stateCount
			}
		}
	}
	return out, nil
}
