package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cave/rules"
)

// Cave holds exactly one grid, tagged by the mode that produced it
type Cave struct {
	Mode   rules.Mode
	Binary *Grid[bool]
	Graded *Grid[int]
}

// BinaryCave wraps an open/wall grid
func BinaryCave(g *Grid[bool]) Cave {
	return Cave{Mode: rules.Binary, Binary: g}
}

// GradedCave wraps a wall strength grid
func GradedCave(g *Grid[int]) Cave {
	return Cave{Mode: rules.Graded, Graded: g}
}

// SeedCave turns a noise grid into the variant selected by cfg.Mode
func SeedCave(noise *Grid[bool], cfg rules.Config) (Cave, error) {
	switch cfg.Mode {
	case rules.Binary:
		if noise == nil {
			return Cave{}, errors.Wrap(ErrInvalidDimension, "[SeedCave] nil grid")
		}
		return BinaryCave(noise), nil
	case rules.Graded:
		g, err := ToGraded(noise, cfg.StateCount)
		if err != nil {
			return Cave{}, errors.Wrap(err, "[SeedCave] failed to seed graded grid")
		}
		return GradedCave(g), nil
	}
	return Cave{}, errors.Wrapf(ErrModeMismatch, "[SeedCave] unknown mode: %d", cfg.Mode)
}

// Validate reports ErrModeMismatch unless the grid matching Mode is present
func (c Cave) Validate() error {
	switch c.Mode {
	case rules.Binary:
		if c.Binary == nil || c.Graded != nil {
			return errors.Wrap(ErrModeMismatch, "[Cave.Validate] binary cave must carry only a binary grid")
		}
	case rules.Graded:
		if c.Graded == nil || c.Binary != nil {
			return errors.Wrap(ErrModeMismatch, "[Cave.Validate] graded cave must carry only a graded grid")
		}
	default:
		return errors.Wrapf(ErrModeMismatch, "[Cave.Validate] unknown mode: %d", c.Mode)
	}
	return nil
}

// GetWidth returns the width of the carried grid
func (c Cave) GetWidth() int {
	if c.Mode == rules.Graded && c.Graded != nil {
		return c.Graded.GetWidth()
	}
	if c.Binary != nil {
		return c.Binary.GetWidth()
	}
	return 0
}

// GetHeight returns the height of the carried grid
func (c Cave) GetHeight() int {
	if c.Mode == rules.Graded && c.Graded != nil {
		return c.Graded.GetHeight()
	}
	if c.Binary != nil {
		return c.Binary.GetHeight()
	}
	return 0
}

// OpenCells counts open cells (binary) or cells with a state above zero (graded)
func (c Cave) OpenCells() int {
	if c.Mode == rules.Graded && c.Graded != nil {
		return c.Graded.CountAlive(IsActive)
	}
	if c.Binary != nil {
		return c.Binary.CountAlive(IsOpen)
	}
	return 0
}

// Hash returns the hash of the carried grid
func (c Cave) Hash() string {
	if c.Mode == rules.Graded && c.Graded != nil {
		return c.Graded.Hash()
	}
	if c.Binary != nil {
		return c.Binary.Hash()
	}
	return ""
}
