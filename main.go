package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/juju/gnuflag"

	"github.com/sheikhrachel/go-cave/model"
	"github.com/sheikhrachel/go-cave/utils"
)

var (
	configFile  = flag.String("config", "config.json", "JSON or YAML configuration file")
	seed        = flag.Int64("seed", 0, "noise seed")
	mode        = flag.String("mode", "", "binary or graded")
	generations = flag.Int("generations", 0, "number of smoothing passes")
	animate     = flag.Bool("animate", false, "show one pass per frame until the cave settles")
	logLevel    = flag.String("log", "", "logging level or loggo spec")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: go-cave [flags]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse(true)

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%s not usable)\n", *configFile)
		config = utils.DefaultConfig()
	}
	applyFlags(&config)

	if err := utils.ConfigureLogging(config.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(config *utils.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			config.Seed = *seed
		case "mode":
			config.Mode = *mode
		case "generations":
			config.Generations = *generations
		case "animate":
			config.Animate = *animate
		case "log":
			config.LogLevel = *logLevel
		}
	})
}

func run(config utils.Config) error {
	engine, cave, renderer, stats, err := initializeCave(config)
	if err != nil {
		return err
	}
	displayCaveInfo(config, cave)

	if config.Animate {
		return animateCave(config, engine, cave, renderer, stats)
	}

	start := time.Now()
	cave, err = engine.Smooth(cave)
	if err != nil {
		return err
	}
	cave = finishCave(config, engine.Config(), cave)
	updateCaveStats(cave, engine.Config().Passes(), start, stats)

	renderer.Display(cave, config.StateCount)
	displayCaveStatus("Done", stats)
	if summary := regionSummary(cave, engine.Config().Connectivity); summary != "" {
		fmt.Println(summary)
	}
	return nil
}

// animateCave applies one pass per frame until the cave settles
func animateCave(
	config utils.Config,
	engine *model.Engine,
	cave model.Cave,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim, err := model.NewSimulation(engine, cave)
	if err != nil {
		return err
	}

	lastFrameTime := time.Now()
	for {
		frameStart := time.Now()
		renderer.Clear()
		updateCaveStats(sim.Cave(), sim.Generation(), lastFrameTime, stats)
		lastFrameTime = frameStart

		status := "Smoothing"
		if sim.IsStagnant() {
			status = "Settled"
		}
		displayCaveStatus(status, stats)
		renderer.Display(sim.Cave(), config.StateCount)

		if sim.IsStagnant() {
			return nil
		}
		if config.MaxSteps > 0 && sim.Generation() >= config.MaxSteps {
			fmt.Printf("\nReached maximum steps limit (%d)\n", config.MaxSteps)
			return nil
		}

		select {
		case <-ctx.Done():
			fmt.Println("\nShutting down gracefully...")
			return nil
		case <-time.After(config.FrameRate):
		}

		if err := sim.Step(); err != nil {
			return err
		}
	}
}
