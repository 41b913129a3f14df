package service

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// StatsService counts page reads for the process
type StatsService struct {
	hits   *atomic.Uint64
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(logger *zap.Logger) *StatsService {
	return &StatsService{
		hits:   atomic.NewUint64(0),
		logger: logger,
	}
}

// RecordHit increments the hit counter and returns the new value
func (s *StatsService) RecordHit() uint64 {
	n := s.hits.Inc()
	s.logger.Debug("Page hit recorded", zap.Uint64("hits", n))
	return n
}

// Hits returns the current hit count
func (s *StatsService) Hits() uint64 {
	return s.hits.Load()
}
