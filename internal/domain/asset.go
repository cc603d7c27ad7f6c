package domain

import "time"

// AssetStatus enumerates lifecycle states for tracked assets.
type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
)

// AssetType enumerates known equipment categories.
type AssetType string

const (
	AssetTypeLaptop     AssetType = "Laptop"
	AssetTypePrinter    AssetType = "Printer"
	AssetTypeRadio      AssetType = "Radio"
	AssetTypeScanner    AssetType = "Scanner"
	AssetTypeAccessCard AssetType = "Access Card"
	AssetTypeDesktop    AssetType = "Desktop"
	AssetTypeMonitor    AssetType = "Monitor"
	AssetTypeOther      AssetType = "Other"
)

// Asset is an ICT equipment record. AssetID is the public identifier;
// Tag follows a site convention but is not validated.
type Asset struct {
	ID           int64
	AssetID      string
	Type         AssetType
	Tag          string
	SerialNumber *string
	AssignedTo   string
	StaffID      string
	Department   string
	Status       AssetStatus
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
