package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/dto"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/service"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util"
)

// AssetsHandler manages asset registry endpoints.
type AssetsHandler struct {
	intake *service.IntakeService
}

// NewAssetsHandler constructs handler.
func NewAssetsHandler(intake *service.IntakeService) *AssetsHandler {
	return &AssetsHandler{intake: intake}
}

// CreateAsset POST /assets.
func (h *AssetsHandler) CreateAsset(c *fiber.Ctx) error {
	var req dto.CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	assetID, err := h.intake.RegisterAsset(c.UserContext(), service.AssetCreateInput{
		Type:         domain.AssetType(req.AssetType),
		Tag:          req.AssetTag,
		SerialNumber: req.SerialNumber,
		AssignedTo:   req.AssignedTo,
		StaffID:      req.StaffID,
		Department:   req.Department,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateAssetResponse{
		Success: true,
		AssetID: assetID,
	})
}

// ListAssets GET /assets.
func (h *AssetsHandler) ListAssets(c *fiber.Ctx) error {
	assets, err := h.intake.ListAssets(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		items = append(items, assetResponse(&assets[i]))
	}
	return c.JSON(items)
}

func assetResponse(asset *domain.Asset) dto.AssetResponse {
	return dto.AssetResponse{
		ID:           asset.ID,
		AssetID:      asset.AssetID,
		AssetType:    asset.Type,
		AssetTag:     asset.Tag,
		SerialNumber: asset.SerialNumber,
		AssignedTo:   asset.AssignedTo,
		StaffID:      asset.StaffID,
		Department:   asset.Department,
		Status:       asset.Status,
		CreatedAt:    asset.CreatedAt,
		UpdatedAt:    asset.UpdatedAt,
	}
}
