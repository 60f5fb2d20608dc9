package feeconfig

import (
	"fmt"
	"sort"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Share is the exact amount a single recipient receives from a split.
type Share struct {
	Address sdk.AccAddress
	Amount  math.Int
}

// Split divides total between the recipients in proportion to their weights.
// Every recipient first receives floor(total * weight / totalWeight). The
// flooring shortfall, strictly less than one unit per recipient, is then handed
// out one unit at a time to the recipients with the largest fractional
// remainder, ties going to the earlier recipient.
//
// The returned shares sum to total exactly and preserve recipient order,
// including recipients whose share is zero. A zero total yields all-zero
// shares.
//
// Intermediate products are computed on math.Int, which is big.Int backed, so
// total*weight cannot overflow. Split panics on a negative total or on the
// zero-value config: both indicate a broken caller invariant, not a condition
// to recover from.
func (c CheckedFeeConfig) Split(total math.Int) []Share {
	if len(c.recipients) == 0 {
		panic("feeconfig: split on zero-value fee config")
	}
	if total.IsNegative() {
		panic(fmt.Sprintf("feeconfig: split of negative total %s", total))
	}

	n := len(c.recipients)
	weightSum := math.NewInt(c.totalWeight)
	shares := make([]Share, n)
	remainders := make([]math.Int, n)

	allocated := math.ZeroInt()
	for i, r := range c.recipients {
		product := total.MulRaw(r.Weight)
		amount := product.Quo(weightSum)
		shares[i] = Share{Address: r.Address, Amount: amount}
		remainders[i] = product.Mod(weightSum)
		allocated = allocated.Add(amount)
	}

	// The shortfall is bounded by the recipient count, so it fits an int.
	leftover := total.Sub(allocated).Int64()

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GT(remainders[order[b]])
	})
	for k := int64(0); k < leftover; k++ {
		i := order[k]
		shares[i].Amount = shares[i].Amount.AddRaw(1)
	}

	return shares
}
