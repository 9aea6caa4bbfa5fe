package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"memeboard-api/internal/pnl"
)

// StatsSummary aggregates the launch track record
type StatsSummary struct {
	TotalLaunched int             `json:"totalLaunched"`
	Wins          int             `json:"wins"`
	Losses        int             `json:"losses"`
	Breakeven     int             `json:"breakeven"`
	TotalPnlSol   decimal.Decimal `json:"totalPnlSol"`
	AvgRoi        decimal.Decimal `json:"avgRoi"`
}

// PerformerEntry is one launched project in the top or bottom list
type PerformerEntry struct {
	ProjectID uuid.UUID       `json:"projectId"`
	Name      string          `json:"name"`
	Ticker    string          `json:"ticker"`
	NetPnl    decimal.Decimal `json:"netPnl"`
	Roi       decimal.Decimal `json:"roi"`
	Status    pnl.Status      `json:"status"`
}

// StatsResponse is the full stats payload
type StatsResponse struct {
	Summary         StatsSummary     `json:"summary"`
	TopPerformers   []PerformerEntry `json:"topPerformers"`
	WorstPerformers []PerformerEntry `json:"worstPerformers"`
}
