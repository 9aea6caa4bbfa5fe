package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"memeboard-api/internal/dto"
	"memeboard-api/internal/pnl"
	"memeboard-api/internal/repository"
)

const (
	statsCacheKey = "memeboard:stats:overview"
	statsCacheTTL = 60 * time.Second
	performerCap  = 5
)

// StatsInvalidator is the slice of StatsService that mutating services
// need: anything that changes launch outcomes drops the cached stats
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}

// StatsService defines the interface for launch statistics
type StatsService interface {
	StatsInvalidator
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

// statsServiceImpl is the implementation of StatsService. A nil redis
// client disables caching; every read then recomputes from the
// database.
type statsServiceImpl struct {
	projectRepo repository.ProjectRepository
	redis       *redis.Client
	logger      *zap.Logger
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(projectRepo repository.ProjectRepository, redisClient *redis.Client, logger *zap.Logger) StatsService {
	return &statsServiceImpl{
		projectRepo: projectRepo,
		redis:       redisClient,
		logger:      logger,
	}
}

// GetStats returns the aggregated launch track record. Results are
// cached for a minute; cache failures fall through to the database.
func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var stats dto.StatsResponse
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
			s.logger.Warn("discarding unreadable stats cache entry", zap.Error(err))
		} else if err != redis.Nil {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.redis.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err(); err != nil {
				s.logger.Warn("stats cache write failed", zap.Error(err))
			}
		}
	}

	return stats, nil
}

// Invalidate drops the cached stats so the next read recomputes
func (s *statsServiceImpl) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, statsCacheKey).Err(); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

func (s *statsServiceImpl) compute(ctx context.Context) (*dto.StatsResponse, error) {
	projects, err := s.projectRepo.FindLaunched(ctx)
	if err != nil {
		s.logger.Error("failed to load launched projects", zap.Error(err))
		return nil, err
	}

	performers := make([]dto.PerformerEntry, 0, len(projects))
	totalPnl := decimal.Zero
	roiSum := decimal.Zero
	var wins, losses, breakeven int

	for _, p := range projects {
		if p.Pnl == nil {
			continue
		}
		result := pnl.Compute(p.Pnl.InitialSol, p.Pnl.CurrentValueSol, p.Pnl.RealizedSol)

		switch result.Status {
		case pnl.StatusWin:
			wins++
		case pnl.StatusLoss:
			losses++
		default:
			breakeven++
		}
		totalPnl = totalPnl.Add(result.NetPnl)
		roiSum = roiSum.Add(result.Roi)

		ticker := ""
		if p.Launch != nil {
			ticker = p.Launch.Ticker
		}
		performers = append(performers, dto.PerformerEntry{
			ProjectID: p.ID,
			Name:      p.Name,
			Ticker:    ticker,
			NetPnl:    result.NetPnl,
			Roi:       result.Roi,
			Status:    result.Status,
		})
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].NetPnl.GreaterThan(performers[j].NetPnl)
	})

	avgRoi := decimal.Zero
	if len(performers) > 0 {
		avgRoi = roiSum.Div(decimal.NewFromInt(int64(len(performers))))
	}

	return &dto.StatsResponse{
		Summary: dto.StatsSummary{
			TotalLaunched: len(performers),
			Wins:          wins,
			Losses:        losses,
			Breakeven:     breakeven,
			TotalPnlSol:   totalPnl,
			AvgRoi:        avgRoi,
		},
		TopPerformers:   topPerformers(performers),
		WorstPerformers: worstPerformers(performers),
	}, nil
}

// topPerformers returns the best entries, highest net PNL first
func topPerformers(sorted []dto.PerformerEntry) []dto.PerformerEntry {
	n := performerCap
	if len(sorted) < n {
		n = len(sorted)
	}
	top := make([]dto.PerformerEntry, n)
	copy(top, sorted[:n])
	return top
}

// worstPerformers returns the worst entries, lowest net PNL first
func worstPerformers(sorted []dto.PerformerEntry) []dto.PerformerEntry {
	n := performerCap
	if len(sorted) < n {
		n = len(sorted)
	}
	worst := make([]dto.PerformerEntry, 0, n)
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		worst = append(worst, sorted[i])
	}
	return worst
}
