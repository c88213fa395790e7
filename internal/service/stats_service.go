package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/harir2002/cyber-resilience-Quiz/internal/config"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// statsCacheTTL keeps the public stats endpoint cheap under load while
// staying fresh enough for a dashboard.
const statsCacheTTL = 60 * time.Second

// StatsService serves aggregate assessment statistics with a short-lived
// Redis cache in front of the aggregate queries.
type StatsService struct {
	companies   CompanyStore
	assessments AssessmentStore
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(companies CompanyStore, assessments AssessmentStore, rdb *redis.Client, log zerolog.Logger) *StatsService {
	return &StatsService{companies: companies, assessments: assessments, rdb: rdb, log: log}
}

// Stats returns the aggregate snapshot, cached for statsCacheTTL.
func (s *StatsService) Stats(ctx context.Context) (*model.Stats, error) {
	key := config.CacheKey.StatsKey()

	cached, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var stats model.Stats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("stats cache read failed")
	}

	stats, err := s.assessments.Stats(ctx)
	if err != nil {
		return nil, err
	}

	companies, err := s.companies.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCompanies = companies

	if raw, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, key, raw, statsCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}

	return stats, nil
}
