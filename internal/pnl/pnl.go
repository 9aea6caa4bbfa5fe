// Package pnl implements the profit-and-loss arithmetic for launched
// projects. It is a pure package: the same computation backs both the
// launch-completion preview and the global stats aggregation, so the
// two can never disagree.
package pnl

import "github.com/shopspring/decimal"

// Status classifies the sign of a net PNL
type Status string

const (
	StatusWin       Status = "win"
	StatusLoss      Status = "loss"
	StatusBreakeven Status = "breakeven"
)

var hundred = decimal.NewFromInt(100)

// Result holds the derived figures for one PNL record
type Result struct {
	NetPnl decimal.Decimal `json:"netPnl"`
	Roi    decimal.Decimal `json:"roi"`
	Status Status          `json:"status"`
}

// Compute derives net PNL, ROI and win/loss status from the recorded
// amounts.
//
//	netPnl = current - initial + realized
//	roi    = initial > 0 ? netPnl/initial * 100 : 0
//
// A zero initial yields roi = 0 regardless of the netPnl sign; this
// avoids division by zero and matches the dashboard's display rules.
func Compute(initial, current, realized decimal.Decimal) Result {
	net := current.Sub(initial).Add(realized)

	roi := decimal.Zero
	if initial.IsPositive() {
		roi = net.Div(initial).Mul(hundred)
	}

	return Result{
		NetPnl: net,
		Roi:    roi,
		Status: StatusOf(net),
	}
}

// StatusOf classifies a net PNL. The three statuses are exhaustive and
// mutually exclusive.
func StatusOf(netPnl decimal.Decimal) Status {
	switch netPnl.Sign() {
	case 1:
		return StatusWin
	case -1:
		return StatusLoss
	default:
		return StatusBreakeven
	}
}
