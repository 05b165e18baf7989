package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cave/model"
	"github.com/sheikhrachel/go-cave/rules"
	"github.com/sheikhrachel/go-cave/utils"
)

// newSampler picks the noise source named in the config
func newSampler(config utils.Config) (model.Sampler, error) {
	if config.Sampler == utils.SamplerPerlin {
		s, err := model.NewPerlinSampler(config.Seed, config.PerlinScale)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return model.NewUniformSampler(config.Seed), nil
}

// initializeCave sets up the engine and the seeded cave
func initializeCave(config utils.Config) (
	*model.Engine,
	model.Cave,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	ruleCfg, err := config.RuleConfig()
	if err != nil {
		return nil, model.Cave{}, nil, nil, err
	}

	var opts []model.EngineOption
	if config.UseMemoryPool {
		opts = append(opts,
			model.WithPool(model.NewGridPool[bool]()),
			model.WithPool(model.NewGridPool[int]()),
		)
	}
	engine, err := model.NewEngine(ruleCfg, opts...)
	if err != nil {
		return nil, model.Cave{}, nil, nil, err
	}

	sampler, err := newSampler(config)
	if err != nil {
		return nil, model.Cave{}, nil, nil, errors.Wrap(err, "[initializeCave] failed to create sampler")
	}
	noise, err := model.GenerateNoise(sampler, config.Width, config.Height, config.Threshold)
	if err != nil {
		return nil, model.Cave{}, nil, nil, errors.Wrap(err, "[initializeCave] failed to generate noise")
	}
	cave, err := model.SeedCave(noise, ruleCfg)
	if err != nil {
		return nil, model.Cave{}, nil, nil, err
	}

	return engine, cave, &model.TerminalRenderer{}, utils.NewStats(), nil
}

// displayCaveInfo shows the initial run information
func displayCaveInfo(config utils.Config, cave model.Cave) {
	fmt.Printf("Mode: %s | Connectivity: %s | Rule: S>=%d B>=%d | Sampler: %s\n",
		config.Mode, config.Connectivity, config.SurvivalThreshold, config.BirthThreshold, config.Sampler)
	fmt.Printf("Grid: %dx%d | Initial open cells: %d\n",
		cave.GetWidth(), cave.GetHeight(), cave.OpenCells())
	fmt.Println()
}

// updateCaveStats refreshes stats for the current cave
func updateCaveStats(cave model.Cave, generation int, lastFrameTime time.Time, stats *utils.Stats) {
	stats.Update(generation, cave.OpenCells(), cave.GetWidth()*cave.GetHeight(), time.Since(lastFrameTime))
}

// displayCaveStatus shows the current run status
func displayCaveStatus(status string, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Open: %d | Density: %.1f%% | Status: %s\n",
		stats.TotalGenerations, stats.OpenCells, stats.Density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Open: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AverageOpen, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// finishCave applies the optional region cleanup to binary caves
func finishCave(config utils.Config, ruleCfg rules.Config, cave model.Cave) model.Cave {
	if config.MinRegionSize <= 0 || cave.Mode != rules.Binary {
		return cave
	}
	return model.BinaryCave(model.FillSmallRegions(cave.Binary, ruleCfg.Connectivity, config.MinRegionSize))
}

// regionSummary describes the open regions of a binary cave
func regionSummary(cave model.Cave, conn rules.Connectivity) string {
	if cave.Mode != rules.Binary {
		return ""
	}
	regions := model.Regions(cave.Binary, conn)
	largest := 0
	if len(regions) > 0 {
		largest = len(regions[0])
	}
	return fmt.Sprintf("Regions: %d | Largest: %d cells", len(regions), largest)
}
