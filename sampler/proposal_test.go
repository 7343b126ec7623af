package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypernull/hypergraph"
)

func TestStubPairs(t *testing.T) {
	h, err := hypergraph.Build([][]int64{{1, 2}, {2, 3, 4}, {4, 5}})
	require.NoError(t, err)

	t.Run("Unrestricted", func(t *testing.T) {
		pairs := newStubPairs(h, false)
		require.True(t, pairs.valid())

		rng := rand.New(rand.NewSource(1)) // nolint gosec
		for i := 0; i < 500; i++ {
			a, b := pairs.draw(rng)
			assert.NotEqual(t, a, b)
		}
	})

	t.Run("DetailedMatchesDimensions", func(t *testing.T) {
		pairs := newStubPairs(h, true)
		require.True(t, pairs.valid())

		rng := rand.New(rand.NewSource(2)) // nolint gosec
		for i := 0; i < 500; i++ {
			a, b := pairs.draw(rng)
			assert.NotEqual(t, a, b)
			assert.Equal(t, h.Dimension(a.Edge), h.Dimension(b.Edge))
		}
	})
}

func TestEdgePairs(t *testing.T) {
	h, err := hypergraph.Build([][]int64{{1, 2}, {2, 3, 4}, {4, 5}, {3, 5, 1}})
	require.NoError(t, err)

	t.Run("Unrestricted", func(t *testing.T) {
		pairs := newEdgePairs(h, false)
		require.True(t, pairs.valid())

		rng := rand.New(rand.NewSource(3)) // nolint gosec
		seen := make(map[[2]int]bool)
		for i := 0; i < 2000; i++ {
			a, b := pairs.draw(rng)
			assert.NotEqual(t, a, b)
			if a > b {
				a, b = b, a
			}
			seen[[2]int{a, b}] = true
		}
		// All 6 unordered pairs should appear over 2000 draws.
		assert.Len(t, seen, 6)
	})

	t.Run("DetailedMatchesDimensions", func(t *testing.T) {
		pairs := newEdgePairs(h, true)
		require.True(t, pairs.valid())

		rng := rand.New(rand.NewSource(4)) // nolint gosec
		for i := 0; i < 500; i++ {
			a, b := pairs.draw(rng)
			assert.NotEqual(t, a, b)
			assert.Equal(t, h.Dimension(a), h.Dimension(b))
		}
	})

	t.Run("InvalidWithoutPeers", func(t *testing.T) {
		single, err := hypergraph.Build([][]int64{{1, 2}})
		require.NoError(t, err)
		assert.False(t, newEdgePairs(single, false).valid())

		distinct, err := hypergraph.Build([][]int64{{1, 2}, {1, 2, 3}})
		require.NoError(t, err)
		assert.False(t, newEdgePairs(distinct, true).valid())
		assert.True(t, newEdgePairs(distinct, false).valid())
	})
}

func TestGroupedPairsWeighting(t *testing.T) {
	// Group A has 3 members (3 pairs), group B has 2 (1 pair): pair
	// draws should split roughly 3:1.
	g := newGroupedPairs(map[int][]int{
		2: {0, 1, 2},
		3: {3, 4},
	})
	require.EqualValues(t, 4, g.total)

	rng := rand.New(rand.NewSource(5)) // nolint gosec
	var small int
	const draws = 4000
	for i := 0; i < draws; i++ {
		a, _ := g.draw(rng)
		if a >= 3 {
			small++
		}
	}
	assert.InDelta(t, draws/4, small, float64(draws)/20)
}
