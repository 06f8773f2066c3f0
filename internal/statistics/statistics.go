// Package statistics summarizes the rows of a fixture file.
package statistics

import (
	"fmt"
	"math"

	"github.com/mllab/fixturegen/internal/fixture"
)

// Statistics accumulates per-row figures for one fixture file
type Statistics struct {
	Rows  int
	SumX  float64
	SumX2 float64 // Sum of squares for variance calculation
	MinX  float64
	MaxX  float64

	// Labels counts rows by Type; index 0 and 1 are the valid labels
	Labels [2]int
	// Invalid counts rows whose Type is outside {0, 1}
	Invalid int
}

// Add incorporates one row
func (s *Statistics) Add(row fixture.Row) {
	if s.Rows == 0 || row.X < s.MinX {
		s.MinX = row.X
	}
	if s.Rows == 0 || row.X > s.MaxX {
		s.MaxX = row.X
	}
	s.Rows++
	s.SumX += row.X
	s.SumX2 += row.X * row.X

	if row.Type == 0 || row.Type == 1 {
		s.Labels[row.Type]++
	} else {
		s.Invalid++
	}
}

// FromRows builds statistics over all rows
func FromRows(rows []fixture.Row) *Statistics {
	s := &Statistics{}
	for _, r := range rows {
		s.Add(r)
	}
	return s
}

// Mean returns the arithmetic mean of X
func (s *Statistics) Mean() float64 {
	if s.Rows == 0 {
		return 0
	}
	return s.SumX / float64(s.Rows)
}

// Variance returns the sample variance of X
func (s *Statistics) Variance() float64 {
	if s.Rows < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumX2 - float64(s.Rows)*mean*mean) / float64(s.Rows-1)
}

// StdDev returns the sample standard deviation of X
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// PositiveRate returns the fraction of rows labeled 1
func (s *Statistics) PositiveRate() float64 {
	if s.Rows == 0 {
		return 0
	}
	return float64(s.Labels[1]) / float64(s.Rows)
}

// String gives a one-line summary
func (s *Statistics) String() string {
	return fmt.Sprintf("rows=%d x[min=%.2f max=%.2f mean=%.3f sd=%.3f] labels[0=%d 1=%d]",
		s.Rows, s.MinX, s.MaxX, s.Mean(), s.StdDev(), s.Labels[0], s.Labels[1])
}
