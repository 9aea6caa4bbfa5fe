package dto

import (
	"github.com/shopspring/decimal"
)

// CompleteLaunchRequest finalizes a project launch. Amounts are SOL
// values; initial and current are required, realized defaults to zero.
type CompleteLaunchRequest struct {
	Ticker          string           `json:"ticker" binding:"required,min=1,max=20"`
	ContractAddress string           `json:"contractAddress"`
	Chain           string           `json:"chain"`
	LaunchDate      string           `json:"launchDate"`
	InitialSol      *decimal.Decimal `json:"initialSol" binding:"required"`
	CurrentValueSol *decimal.Decimal `json:"currentValueSol" binding:"required"`
	RealizedSol     *decimal.Decimal `json:"realizedSol"`
	Notes           string           `json:"notes"`
}

// UpdatePnlRequest adjusts a launched project's PNL record
type UpdatePnlRequest struct {
	InitialSol      *decimal.Decimal `json:"initialSol"`
	CurrentValueSol *decimal.Decimal `json:"currentValueSol"`
	RealizedSol     *decimal.Decimal `json:"realizedSol"`
	Notes           *string          `json:"notes"`
}
