package feeconfig_test

import (
	"fmt"
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apollodao/cw-config/feeconfig"
)

// checkedConfig builds a checked config from (name, weight) pairs.
func checkedConfig(t testing.TB, weights ...int64) feeconfig.CheckedFeeConfig {
	t.Helper()
	resolver := mapResolver{}
	recipients := make([]feeconfig.Recipient, len(weights))
	for i, w := range weights {
		name := fmt.Sprintf("recipient%d", i)
		resolver[name] = testAddr(name)
		recipients[i] = feeconfig.Recipient{Address: name, Weight: w}
	}
	cfg, err := feeconfig.NewFeeConfig(recipients)
	require.NoError(t, err)
	checked, err := cfg.Check(resolver)
	require.NoError(t, err)
	return checked
}

func amounts(shares []feeconfig.Share) []int64 {
	out := make([]int64, len(shares))
	for i, s := range shares {
		out[i] = s.Amount.Int64()
	}
	return out
}

func TestSplit(t *testing.T) {
	testCases := []struct {
		name    string
		weights []int64
		total   int64
		want    []int64
	}{
		{
			name:    "exact proportional split",
			weights: []int64{1, 1, 3},
			total:   10,
			want:    []int64{2, 2, 6},
		},
		{
			name:    "remainder goes to largest fractional remainder",
			weights: []int64{1, 1, 2},
			total:   10,
			want:    []int64{3, 2, 5},
		},
		{
			name:    "equal weights odd total favors first recipient",
			weights: []int64{1, 1},
			total:   5,
			want:    []int64{3, 2},
		},
		{
			name:    "zero total yields all zero shares",
			weights: []int64{1, 2, 3},
			total:   0,
			want:    []int64{0, 0, 0},
		},
		{
			name:    "total smaller than recipient count",
			weights: []int64{1, 1, 1, 1},
			total:   2,
			want:    []int64{1, 1, 0, 0},
		},
		{
			name:    "single recipient takes everything",
			weights: []int64{17},
			total:   1234,
			want:    []int64{1234},
		},
		{
			name:    "heavy weight dominates",
			weights: []int64{99, 1},
			total:   100,
			want:    []int64{99, 1},
		},
		{
			name:    "one unit to two recipients",
			weights: []int64{1, 1},
			total:   1,
			want:    []int64{1, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := checkedConfig(t, tc.weights...)
			shares := cfg.Split(math.NewInt(tc.total))
			assert.Equal(t, tc.want, amounts(shares))
		})
	}
}

func TestSplitPreservesOrderAndLength(t *testing.T) {
	cfg := checkedConfig(t, 5, 1, 3)
	shares := cfg.Split(math.NewInt(7))

	require.Len(t, shares, 3)
	recipients := cfg.Recipients()
	for i := range shares {
		assert.Equal(t, recipients[i].Address, shares[i].Address)
	}
}

func TestSplitIsExact(t *testing.T) {
	// Exactness must hold for arbitrary weights and totals, so exercise a
	// deterministic pseudo-random spread.
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		n := 1 + r.Intn(12)
		weights := make([]int64, n)
		for i := range weights {
			weights[i] = 1 + r.Int63n(1_000_000)
		}
		cfg := checkedConfig(t, weights...)
		total := math.NewInt(r.Int63n(1_000_000_000))

		shares := cfg.Split(total)
		require.Len(t, shares, n)

		sum := math.ZeroInt()
		for _, s := range shares {
			require.False(t, s.Amount.IsNegative())
			sum = sum.Add(s.Amount)
		}
		require.True(t, sum.Equal(total), "weights %v total %s got sum %s", weights, total, sum)
	}
}

func TestSplitIsDeterministic(t *testing.T) {
	cfg := checkedConfig(t, 3, 7, 11, 2, 2)
	total := math.NewInt(1_000_003)

	first := cfg.Split(total)
	second := cfg.Split(total)
	assert.Equal(t, amounts(first), amounts(second))
}

func TestSplitWideIntermediates(t *testing.T) {
	// total * weight far exceeds an int64; the product must not truncate.
	cfg := checkedConfig(t, feeconfig.MaxWeight, 1)
	total := math.NewIntWithDecimal(1, 30) // 10^30

	shares := cfg.Split(total)
	sum := shares[0].Amount.Add(shares[1].Amount)
	require.True(t, sum.Equal(total))
	require.True(t, shares[0].Amount.GT(shares[1].Amount))
}

func TestSplitNegativeTotalPanics(t *testing.T) {
	cfg := checkedConfig(t, 1, 1)
	require.Panics(t, func() {
		cfg.Split(math.NewInt(-1))
	})
}

func TestSplitZeroValueConfigPanics(t *testing.T) {
	var cfg feeconfig.CheckedFeeConfig
	require.Panics(t, func() {
		cfg.Split(math.NewInt(1))
	})
}

func BenchmarkSplit(b *testing.B) {
	b.ReportAllocs()
	weights := make([]int64, 50)
	r := rand.New(rand.NewSource(7))
	for i := range weights {
		weights[i] = 1 + r.Int63n(10_000)
	}
	cfg := checkedConfig(b, weights...)
	total := math.NewInt(123_456_789)

	for n := 0; n < b.N; n++ {
		cfg.Split(total)
	}
}
