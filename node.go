package dawg

import (
	"sort"
	"strconv"
	"strings"
)

// buildNode is a mutable node used only during construction. It carries a
// per-builder identity (used for debugging, as the child key inside a
// parent's structural signature, and for the deterministic flattening
// order), a finality flag, an ordered mapping from letter to child
// buildNode, and a cached structural signature.
//
// Two buildNodes are equal iff their signatures are equal. The signature
// is recomputed on every edge or finality mutation so that it never goes
// stale between mutation and lookup in the minimization table.
type buildNode struct {
	id    int
	final bool
	edges map[byte]*buildNode
	sig   string
}

func newBuildNode(id int) *buildNode {
	n := &buildNode{id: id, edges: make(map[byte]*buildNode)}
	n.sig = n.computeSignature()
	return n
}

func (n *buildNode) setEdge(letter byte, child *buildNode) {
	n.edges[letter] = child
	n.sig = n.computeSignature()
}

func (n *buildNode) setFinal(final bool) {
	n.final = final
	n.sig = n.computeSignature()
}

func (n *buildNode) signature() string {
	return n.sig
}

// computeSignature builds a deterministic string of the form
// "!_a:3_c:7_t:9" encoding finality plus the sorted (letter, child id)
// pairs. Sorting by letter is required so that two nodes with the same
// edge set in different insertion order still hash identically.
func (n *buildNode) computeSignature() string {
	letters := make([]byte, 0, len(n.edges))
	for l := range n.edges {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	var b strings.Builder
	if n.final {
		b.WriteByte('!')
	}
	for _, l := range letters {
		b.WriteByte('_')
		b.WriteByte(l)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(n.edges[l].id))
	}
	return b.String()
}

func (n *buildNode) sortedLetters() []byte {
	letters := make([]byte, 0, len(n.edges))
	for l := range n.edges {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
