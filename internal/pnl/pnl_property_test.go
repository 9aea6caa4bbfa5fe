package pnl

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

// For any initial ≥ 0, current ≥ 0 and realized, the computed netPnl
// must equal current − initial + realized exactly, and the status must
// follow the sign of netPnl.
func TestProperty_NetPnlIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	amount := gen.Float64Range(0, 1e6)
	realized := gen.Float64Range(-1e6, 1e6)

	properties.Property("netPnl = current - initial + realized", prop.ForAll(
		func(initial, current, real float64) bool {
			i := decimal.NewFromFloat(initial)
			c := decimal.NewFromFloat(current)
			r := decimal.NewFromFloat(real)

			result := Compute(i, c, r)
			expected := c.Sub(i).Add(r)
			return result.NetPnl.Equal(expected)
		},
		amount, amount, realized,
	))

	properties.Property("status follows the sign of netPnl", prop.ForAll(
		func(initial, current, real float64) bool {
			result := Compute(
				decimal.NewFromFloat(initial),
				decimal.NewFromFloat(current),
				decimal.NewFromFloat(real),
			)
			switch result.NetPnl.Sign() {
			case 1:
				return result.Status == StatusWin
			case -1:
				return result.Status == StatusLoss
			default:
				return result.Status == StatusBreakeven
			}
		},
		amount, amount, realized,
	))

	properties.Property("roi is zero whenever initial is zero", prop.ForAll(
		func(current, real float64) bool {
			result := Compute(
				decimal.Zero,
				decimal.NewFromFloat(current),
				decimal.NewFromFloat(real),
			)
			return result.Roi.IsZero()
		},
		amount, realized,
	))

	properties.TestingRun(t)
}
