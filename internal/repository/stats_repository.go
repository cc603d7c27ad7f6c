package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// StatsRepository runs the aggregate queries feeding the dashboard.
type StatsRepository interface {
	CountTickets(ctx context.Context) (int64, error)
	CountTicketsByStatus(ctx context.Context, status domain.TicketStatus) (int64, error)
	CountAssets(ctx context.Context) (int64, error)
	CountAssetsByStatus(ctx context.Context, status domain.AssetStatus) (int64, error)
	TicketsByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	TicketsByPriority(ctx context.Context) ([]domain.PriorityCount, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository instantiates repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) CountTickets(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tickets`)
}

func (r *statsRepository) CountTicketsByStatus(ctx context.Context, status domain.TicketStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE status=$1`, status).Scan(&count)
	return count, err
}

func (r *statsRepository) CountAssets(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM assets`)
}

func (r *statsRepository) CountAssetsByStatus(ctx context.Context, status domain.AssetStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assets WHERE status=$1`, status).Scan(&count)
	return count, err
}

func (r *statsRepository) TicketsByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.pool.Query(ctx, `SELECT category, COUNT(*) FROM tickets GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.CategoryCount{}
	for rows.Next() {
		var entry domain.CategoryCount
		if err := rows.Scan(&entry.Category, &entry.Count); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *statsRepository) TicketsByPriority(ctx context.Context) ([]domain.PriorityCount, error) {
	rows, err := r.pool.Query(ctx, `SELECT priority, COUNT(*) FROM tickets GROUP BY priority`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.PriorityCount{}
	for rows.Next() {
		var entry domain.PriorityCount
		if err := rows.Scan(&entry.Priority, &entry.Count); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *statsRepository) count(ctx context.Context, query string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}
