package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension indicates a width or height below 1, or ragged rows
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrInvalidThreshold indicates a noise threshold outside [0,100]
	ErrInvalidThreshold = errors.New("invalid noise threshold")
	// ErrInvalidScale indicates a Perlin scale that is not positive and finite
	ErrInvalidScale = errors.New("invalid noise scale")
	// ErrInvalidState indicates a graded cell state outside [0, StateCount]
	ErrInvalidState = errors.New("invalid graded state")
	// ErrModeMismatch indicates a Cave whose variant does not match the engine
	ErrModeMismatch = errors.New("cave mode mismatch")
)
