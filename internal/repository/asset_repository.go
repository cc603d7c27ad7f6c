package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// AssetRepository encapsulates asset persistence.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByAssetID(ctx context.Context, assetID string) (*domain.Asset, error)
	ListNewestFirst(ctx context.Context) ([]domain.Asset, error)
}

type assetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository instantiates repository.
func NewAssetRepository(pool *pgxpool.Pool) AssetRepository {
	return &assetRepository{pool: pool}
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	const query = `
        INSERT INTO assets (asset_id, asset_type, asset_tag, serial_number, assigned_to, staff_id, department, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		asset.AssetID,
		asset.Type,
		asset.Tag,
		asset.SerialNumber,
		asset.AssignedTo,
		asset.StaffID,
		asset.Department,
		asset.Status,
	).Scan(&asset.ID, &asset.CreatedAt)
}

func (r *assetRepository) GetByAssetID(ctx context.Context, assetID string) (*domain.Asset, error) {
	const query = `
        SELECT id, asset_id, asset_type, asset_tag, serial_number, assigned_to,
               staff_id, department, status, created_at, updated_at
        FROM assets WHERE asset_id=$1`
	var asset domain.Asset
	if err := r.pool.QueryRow(ctx, query, assetID).Scan(
		&asset.ID,
		&asset.AssetID,
		&asset.Type,
		&asset.Tag,
		&asset.SerialNumber,
		&asset.AssignedTo,
		&asset.StaffID,
		&asset.Department,
		&asset.Status,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) ListNewestFirst(ctx context.Context) ([]domain.Asset, error) {
	const query = `
        SELECT id, asset_id, asset_type, asset_tag, serial_number, assigned_to,
               staff_id, department, status, created_at, updated_at
        FROM assets ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAssets(rows)
}

func scanAssets(rows pgx.Rows) ([]domain.Asset, error) {
	var result []domain.Asset
	for rows.Next() {
		var asset domain.Asset
		if err := rows.Scan(
			&asset.ID,
			&asset.AssetID,
			&asset.Type,
			&asset.Tag,
			&asset.SerialNumber,
			&asset.AssignedTo,
			&asset.StaffID,
			&asset.Department,
			&asset.Status,
			&asset.CreatedAt,
			&asset.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, asset)
	}
	return result, rows.Err()
}
