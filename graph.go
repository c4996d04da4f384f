package dawg

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-logr/logr"
)

// indexedNode is an immutable, array-indexed node: a finality flag plus a
// mapping from letter to child node index. Graph owns the node array
// exclusively; there are no back-references from children to parents.
type indexedNode struct {
	final bool
	edges map[byte]int
}

// Graph is an immutable, minimized DAWG. It is safe to share across
// goroutines without synchronization: Lookup and Anagrams allocate only
// transient per-call state.
type Graph struct {
	nodes    []indexedNode
	numAdded int
	log      logr.Logger
}

const rootIndex = 0

// NumNodes returns the number of nodes in the indexed graph.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumWords returns the number of words that were inserted into the
// Builder that produced this Graph. The count is not part of the on-disk
// format, so it is zero for a Graph obtained via Deserialize, Load or
// LoadCompressed.
func (g *Graph) NumWords() int {
	return g.numAdded
}

// flatten walks the minimized builder graph reachable from root and
// produces a dense, zero-based Graph: nodes are collected by builder
// identity, dense indices are assigned by sorting those identities
// ascending (the builder assigns identity 0 to the root, so this places
// the root at index 0), and every edge is rewritten from a builder
// identity to a dense index.
func flatten(root *buildNode, numAdded int, log logr.Logger) (*Graph, error) {
	visited := make(map[int]*buildNode)
	var walk func(n *buildNode)
	walk = func(n *buildNode) {
		if _, ok := visited[n.id]; ok {
			return
		}
		visited[n.id] = n
		for _, letter := range n.sortedLetters() {
			walk(n.edges[letter])
		}
	}
	walk(root)

	ids := make([]int, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	if len(ids) == 0 || index[root.id] != rootIndex {
		return nil, errors.New("dawg: internal error: root did not flatten to index 0")
	}

	nodes := make([]indexedNode, len(ids))
	for i, id := range ids {
		bn := visited[id]
		edges := make(map[byte]int, len(bn.edges))
		for letter, child := range bn.edges {
			ci, ok := index[child.id]
			if !ok {
				return nil, fmt.Errorf("%w: dangling child reference during flatten", ErrDecode)
			}
			edges[letter] = ci
		}
		nodes[i] = indexedNode{final: bn.final, edges: edges}
	}

	return &Graph{nodes: nodes, numAdded: numAdded, log: log}, nil
}
