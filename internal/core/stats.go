package core

import "time"

// Stats tracks population and pacing for status displays.
type Stats struct {
	Generation           uint64
	Population           int
	AveragePopulation    float64
	GenerationsPerSecond float64
	StartTime            time.Time

	lastStep time.Time
}

// NewStats starts a Stats clock at now.
func NewStats(now time.Time) *Stats {
	return &Stats{StartTime: now}
}

// Update records a committed generation observed at now.
func (s *Stats) Update(generation uint64, population int, now time.Time) {
	s.Generation = generation
	s.Population = population
	if !s.lastStep.IsZero() {
		if d := now.Sub(s.lastStep); d > 0 {
			s.GenerationsPerSecond = 1.0 / d.Seconds()
		}
	}
	s.lastStep = now

	// Exponential moving average
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Restart clears the running averages after the board is reseeded.
func (s *Stats) Restart(population int, now time.Time) {
	*s = Stats{StartTime: now, Population: population, AveragePopulation: float64(population)}
}
