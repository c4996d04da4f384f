package dawg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wjolley/dawg"
)

func TestLookupAll(t *testing.T) {
	g := buildGraph(t, []string{"car", "cat", "dog"})

	results := g.LookupAll(context.Background(), []string{"cat", "bird", "dog", "car"})
	require.Equal(t, []bool{true, false, true, true}, results)
}

func TestLookupAllEmpty(t *testing.T) {
	g := buildGraph(t, []string{"cat"})
	require.Empty(t, g.LookupAll(context.Background(), nil))
}

func TestAnagramsBatch(t *testing.T) {
	g := buildGraph(t, []string{"act", "cart", "cat"})

	reqs := []dawg.AnagramRequest{
		{Rack: []byte{'c', 'a', 't'}, WordLength: 3},
		{Rack: []byte{'t', 'a', 'c'}, WordLength: 4, Fixed: map[int]byte{2: 'r'}},
	}

	results, err := g.AnagramsBatch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.ElementsMatch(t, []string{"act", "cat"}, results[0])
	require.Equal(t, []string{"cart"}, results[1])
}

func TestAnagramsBatchPropagatesInvalidArgument(t *testing.T) {
	g := buildGraph(t, []string{"cat"})

	reqs := []dawg.AnagramRequest{
		{Rack: []byte{'c', 'a', 't'}, WordLength: 3},
		{Rack: []byte{'c', 'a', 't'}, WordLength: 0},
	}

	_, err := g.AnagramsBatch(context.Background(), reqs)
	require.ErrorIs(t, err, dawg.ErrInvalidArgument)
}
