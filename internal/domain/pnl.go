package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectPnl records the capital and proceeds of a launched project in
// SOL. Amounts are stored as entered; net PNL and ROI are derived at
// read time, never persisted.
type ProjectPnl struct {
	BaseModel
	ProjectID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_project_pnl_project_id" json:"projectId"`
	InitialSol      decimal.Decimal `gorm:"type:numeric(20,9);not null;default:0" json:"initialSol"`
	CurrentValueSol decimal.Decimal `gorm:"type:numeric(20,9);not null;default:0" json:"currentValueSol"`
	RealizedSol     decimal.Decimal `gorm:"type:numeric(20,9);default:0" json:"realizedSol"`
	Notes           string          `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name for ProjectPnl
func (ProjectPnl) TableName() string {
	return "project_pnl"
}
