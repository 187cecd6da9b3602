package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/mflu/unionfind"
	"github.com/stretchr/testify/require"
)

func TestFindSingletons(t *testing.T) {
	f := unionfind.New(5)
	for i := 0; i < 5; i++ {
		require.Equal(t, i, f.Find(i))
	}
}

func TestUnionMerges(t *testing.T) {
	f := unionfind.New(5)
	f.Union(0, 1)
	require.Equal(t, f.Find(0), f.Find(1))
	f.Union(2, 3)
	require.NotEqual(t, f.Find(0), f.Find(2))
	f.Union(1, 2)
	require.Equal(t, f.Find(0), f.Find(3))
}

func TestUnionToForcesRoot(t *testing.T) {
	f := unionfind.New(5)
	f.Union(0, 1)
	f.UnionTo(0, 1, 4) // 4 wasn't a member, but UnionTo just repoints parents
	require.Equal(t, 4, f.Find(0))
	require.Equal(t, 4, f.Find(1))
}

func TestPathCompressionKeepsCorrectness(t *testing.T) {
	f := unionfind.New(6)
	for i := 0; i < 5; i++ {
		f.Union(i, i+1)
	}
	root := f.Find(0)
	for i := 1; i < 6; i++ {
		require.Equal(t, root, f.Find(i))
	}
}
