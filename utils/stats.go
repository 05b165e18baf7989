package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AverageOpen          float64
	TotalGenerations     int
	OpenCells            int
	Density              float64
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one observation of the cave after generation passes
func (s *Stats) Update(generation, openCells, totalCells int, duration time.Duration) {
	s.TotalGenerations = generation
	s.OpenCells = openCells
	if totalCells > 0 {
		s.Density = float64(openCells) / float64(totalCells) * 100
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average of open cells
	if s.AverageOpen == 0 {
		s.AverageOpen = float64(openCells)
	} else {
		s.AverageOpen = (s.AverageOpen * 0.9) + (float64(openCells) * 0.1)
	}
}
