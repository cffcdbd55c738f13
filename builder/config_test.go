// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	require.Nil(t, newBuilderConfig().rng)

	// 2. WithSeed yields reproducible streams
	a := newBuilderConfig(WithSeed(5)).rng
	b := newBuilderConfig(WithSeed(5)).rng
	require.NotNil(t, a)
	require.Equal(t, a.Int63(), b.Int63())

	// 3. WithRand attaches the exact instance
	r := rand.New(rand.NewSource(1))
	require.Same(t, r, newBuilderConfig(WithRand(r)).rng)

	// 4. Later options override earlier ones
	require.Same(t, r, newBuilderConfig(WithSeed(3), WithRand(r)).rng)
	require.NotSame(t, r, newBuilderConfig(WithRand(r), WithSeed(3)).rng)
}

func TestMycielskiLevelSizes(t *testing.T) {
	t.Parallel()
	order, edges := mycielskiLevel(MaxMycielskiOrder)
	require.Equal(t, 12287, order)
	require.Len(t, edges, 1847756)
}

func TestSizeCeiling(t *testing.T) {
	t.Parallel()
	require.Equal(t, 8386560, pairCount(4096))
	require.LessOrEqual(t, pairCount(4096), MaxEdges)
	require.Greater(t, pairCount(4097), MaxEdges)
	require.Equal(t, math.MaxInt, pairCount(1<<40))
	require.Equal(t, math.MaxInt, productCount(1<<40, 1<<40))
	require.Equal(t, 0, productCount(0, math.MaxInt))
	require.Equal(t, math.MaxInt, sumCount(math.MaxInt, 1))

	require.NoError(t, validateSize(MethodComplete, 4096, pairCount(4096)))
	require.ErrorIs(t, validateSize(MethodComplete, 4097, pairCount(4097)), ErrTooManyEdges)
	require.ErrorIs(t, validateSize(MethodPath, MaxVertices+1, 0), ErrTooManyEdges)
}
