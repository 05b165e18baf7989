package model_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-cave/model"
	"github.com/sheikhrachel/go-cave/rules"
)

func TestSimulation_StepMatchesSmooth(t *testing.T) {
	noise := randomNoise(t, 17, 30, 20)
	e := newEngine(t, caveRule(5))
	sim, err := model.NewSimulation(e, model.BinaryCave(noise))
	require.NoError(t, err)

	for range 3 {
		require.NoError(t, sim.Step())
	}
	assert.Equal(t, 3, sim.Generation())
	assert.True(t, smoothBinary(t, caveRule(3), noise).Equal(sim.Cave().Binary))
}

func TestSimulation_StepIgnoresLegacyGradedCounting(t *testing.T) {
	g := gradedExample(t)
	cfg := gradedRule(1)
	cfg.LegacyGradedCounting = true
	sim, err := model.NewSimulation(newEngine(t, cfg), model.GradedCave(g))
	require.NoError(t, err)

	require.NoError(t, sim.Step())
	require.NoError(t, sim.Step())

	want, err := newEngine(t, gradedRule(2)).SmoothGraded(g)
	require.NoError(t, err)
	assert.True(t, want.Equal(sim.Cave().Graded))
}

func TestSimulation_DetectsFixedPoint(t *testing.T) {
	sim, err := model.NewSimulation(newEngine(t, caveRule(1)), model.BinaryCave(model.NewGrid[bool](6, 6)))
	require.NoError(t, err)
	assert.False(t, sim.IsStagnant())

	steps, err := sim.Run(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)
	assert.True(t, sim.IsStagnant())
}

func TestSimulation_RunSettlesFiveByFive(t *testing.T) {
	noise, err := model.GenerateNoise(model.NewUniformSampler(1), 5, 5, 0)
	require.NoError(t, err)
	sim, err := model.NewSimulation(newEngine(t, caveRule(1)), model.BinaryCave(noise))
	require.NoError(t, err)

	// plus, centre only, empty, empty again
	steps, err := sim.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 4, steps)
	assert.Equal(t, 0, sim.Cave().OpenCells())
}

func TestSimulation_RunHonoursLimitAndContext(t *testing.T) {
	noise, err := model.GenerateNoise(model.NewUniformSampler(1), 5, 5, 0)
	require.NoError(t, err)
	sim, err := model.NewSimulation(newEngine(t, caveRule(1)), model.BinaryCave(noise))
	require.NoError(t, err)

	steps, err := sim.Run(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, steps)
	assert.False(t, sim.IsStagnant())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	steps, err = sim.Run(ctx, 0)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, steps)
	assert.Equal(t, 2, sim.Generation())
}

func TestNewSimulation_Errors(t *testing.T) {
	_, err := model.NewSimulation(nil, model.BinaryCave(model.NewGrid[bool](3, 3)))
	assert.Error(t, err)

	_, err = model.NewSimulation(newEngine(t, caveRule(1)), model.GradedCave(model.NewGrid[int](3, 3)))
	assert.True(t, errors.Is(err, model.ErrModeMismatch))

	_, err = model.NewSimulation(newEngine(t, gradedRule(1)), model.Cave{Mode: rules.Graded})
	assert.True(t, errors.Is(err, model.ErrModeMismatch))
}
