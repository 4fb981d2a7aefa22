package core

import (
	"github.com/shopspring/decimal"
)

const barPrecision int32 = 2 // percentages are rounded to 0.01

// ResourceSelector picks which tuple of a player a bar chart shows.
type ResourceSelector func(p PlayerView) Resources

// Coins selects the coins a player currently holds.
func Coins(p PlayerView) Resources { return p.Resources }

// Incomes selects a player's per-phase income.
func Incomes(p PlayerView) Resources { return p.Income }

// ResourceBar is one player's bar widths, one percentage per resource kind.
type ResourceBar struct {
	PlayerIndex int
	Values      Resources
	Percent     [ResourceKinds]float64
}

// ColumnMax returns the per-kind maximum of the selected tuple across players.
func ColumnMax(players []PlayerView, sel ResourceSelector) Resources {
	var maxes Resources
	for _, p := range players {
		v := sel(p)
		for k := 0; k < ResourceKinds; k++ {
			maxes[k] = max(maxes[k], v[k])
		}
	}
	return maxes
}

// ResourceBars scales each player's selected tuple against the per-kind column maximum.
// A column whose maximum is zero renders as 0% for every player.
func ResourceBars(players []PlayerView, sel ResourceSelector) []ResourceBar {
	maxes := ColumnMax(players, sel)
	hundred := decimal.NewFromInt(100)

	bars := make([]ResourceBar, len(players))
	for i, p := range players {
		v := sel(p)
		bars[i] = ResourceBar{PlayerIndex: p.Index, Values: v}

		for k := 0; k < ResourceKinds; k++ {
			if maxes[k] == 0 {
				continue
			}
			// Use decimal arithmetic for stable rounding of the widths
			pct := decimal.NewFromInt(int64(v[k])).
				Mul(hundred).
				Div(decimal.NewFromInt(int64(maxes[k]))).
				Round(barPrecision)
			bars[i].Percent[k], _ = pct.Float64()
		}
	}
	return bars
}
