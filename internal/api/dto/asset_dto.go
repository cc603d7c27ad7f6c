package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// CreateAssetRequest payload.
type CreateAssetRequest struct {
	AssetType    string  `json:"assetType"`
	AssetTag     string  `json:"assetTag"`
	SerialNumber *string `json:"serialNumber,omitempty"`
	AssignedTo   string  `json:"assignedTo"`
	StaffID      string  `json:"staffId"`
	Department   string  `json:"department"`
}

// CreateAssetResponse echoes the generated identifier.
type CreateAssetResponse struct {
	Success bool   `json:"success"`
	AssetID string `json:"assetId"`
}

// AssetResponse is one stored asset row.
type AssetResponse struct {
	ID           int64              `json:"id"`
	AssetID      string             `json:"asset_id"`
	AssetType    domain.AssetType   `json:"asset_type"`
	AssetTag     string             `json:"asset_tag"`
	SerialNumber *string            `json:"serial_number,omitempty"`
	AssignedTo   string             `json:"assigned_to"`
	StaffID      string             `json:"staff_id"`
	Department   string             `json:"department"`
	Status       domain.AssetStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty"`
}
