package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util"
)

// SnapshotCache stores a serialized stats snapshot for its TTL. Misses and
// backend errors are both reported as a miss; the cache is best-effort only.
type SnapshotCache interface {
	Get(ctx context.Context) ([]byte, bool)
	Set(ctx context.Context, payload []byte)
}

// AggregationService assembles the dashboard snapshot from independent
// count and group-by queries. The constituent counts carry no transactional
// consistency guarantee; acceptable staleness between them is by contract.
type AggregationService struct {
	stats  repository.StatsRepository
	cache  SnapshotCache
	logger *zap.Logger
}

// NewAggregationService constructs the service. cache may be nil.
func NewAggregationService(stats repository.StatsRepository, cache SnapshotCache, logger *zap.Logger) *AggregationService {
	return &AggregationService{stats: stats, cache: cache, logger: logger}
}

// GetStats returns the aggregation snapshot. Any query failure aborts the
// whole aggregation; partial results are never returned.
func (s *AggregationService) GetStats(ctx context.Context) (*domain.StatsSnapshot, error) {
	if cached, ok := s.cachedSnapshot(ctx); ok {
		return cached, nil
	}

	snapshot := &domain.StatsSnapshot{}
	var err error

	if snapshot.TotalTickets, err = s.stats.CountTickets(ctx); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if snapshot.OpenTickets, err = s.stats.CountTicketsByStatus(ctx, domain.TicketStatusOpen); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if snapshot.TotalAssets, err = s.stats.CountAssets(ctx); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if snapshot.ActiveAssets, err = s.stats.CountAssetsByStatus(ctx, domain.AssetStatusActive); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if snapshot.ByCategory, err = s.stats.TicketsByCategory(ctx); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if snapshot.ByPriority, err = s.stats.TicketsByPriority(ctx); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.storeSnapshot(ctx, snapshot)
	return snapshot, nil
}

func (s *AggregationService) cachedSnapshot(ctx context.Context) (*domain.StatsSnapshot, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, ok := s.cache.Get(ctx)
	if !ok {
		return nil, false
	}
	var snapshot domain.StatsSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		s.logger.Warn("discarding unreadable stats snapshot", zap.Error(err))
		return nil, false
	}
	return &snapshot, true
}

func (s *AggregationService) storeSnapshot(ctx context.Context, snapshot *domain.StatsSnapshot) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	s.cache.Set(ctx, payload)
}
