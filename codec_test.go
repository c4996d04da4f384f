package dawg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wjolley/dawg"
)

// TestRoundTripSerialize checks that deserialize(serialize(G)) is
// structurally equal to G: same node count, same root, and the same set
// of accepted words.
func TestRoundTripSerialize(t *testing.T) {
	words := []string{"car", "cars", "cart", "cat", "cats"}
	g := buildGraph(t, words)

	data := g.Serialize()
	g2, err := dawg.Deserialize(data)
	require.NoError(t, err)

	require.Equal(t, g.NumNodes(), g2.NumNodes())
	for _, w := range words {
		require.True(t, g2.Lookup(w))
	}
	require.False(t, g2.Lookup("carp"))

	// Serializing the round-tripped graph again must produce byte-identical
	// output, since the format is deterministic given a fixed node order.
	require.Equal(t, data, g2.Serialize())
}

func TestDeserializeTruncatedBuffer(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cats"})
	data := g.Serialize()

	for cut := 0; cut < len(data); cut++ {
		_, err := dawg.Deserialize(data[:cut])
		require.Error(t, err, "expected decode error at truncation length %d", cut)
		require.ErrorIs(t, err, dawg.ErrDecode)
	}
}

func TestDeserializeRejectsIDMismatch(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cats"})
	data := g.Serialize()

	// Layout: [0:4)=node_count, [4)=final, [5:9)=id, [9)=edgeCount, ...
	// Corrupt the id field of the first node so it no longer matches its
	// position in the array.
	corrupt := append([]byte(nil), data...)
	corrupt[5] = 0xff

	_, err := dawg.Deserialize(corrupt)
	require.ErrorIs(t, err, dawg.ErrDecode)
}

func TestDeserializeRejectsOutOfRangeChildIndex(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cats"})
	data := g.Serialize()

	// The root (first node) is guaranteed to have at least one edge:
	// [9)=edgeCount, [10)=first edge's letter, [11:15)=first edge's child
	// index. Point it far out of range.
	corrupt := append([]byte(nil), data...)
	corrupt[11] = 0xff
	corrupt[12] = 0xff
	corrupt[13] = 0xff
	corrupt[14] = 0x7f

	_, err := dawg.Deserialize(corrupt)
	require.ErrorIs(t, err, dawg.ErrDecode)
}

func TestDeserializeEmptyBuffer(t *testing.T) {
	_, err := dawg.Deserialize(nil)
	require.ErrorIs(t, err, dawg.ErrDecode)
}
