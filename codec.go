package dawg

import (
	"fmt"
	"sort"
)

// Serialize encodes the graph into a byte-exact binary format: a
// little-endian u32 node count, followed by each node in ascending index
// order as (u8 final, u32 id, u8 edgeCount, edgeCount * (u8 letter, u32
// childIndex)). The id field is redundant with the node's position but is
// written for validation on decode.
func (g *Graph) Serialize() []byte {
	w := newByteWriter()
	w.writeU32(uint32(len(g.nodes)))

	for id, n := range g.nodes {
		if n.final {
			w.writeU8(1)
		} else {
			w.writeU8(0)
		}
		w.writeU32(uint32(id))

		letters := make([]byte, 0, len(n.edges))
		for l := range n.edges {
			letters = append(letters, l)
		}
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

		w.writeU8(byte(len(letters)))
		for _, l := range letters {
			w.writeU8(l)
			w.writeU32(uint32(n.edges[l]))
		}
	}

	return w.bytes()
}

// Deserialize decodes bytes produced by Serialize back into a Graph.
// Decoding fails with ErrDecode on truncated input, an id that does not
// match its position, an edge count that would overrun the buffer, or a
// child index outside [0, nodeCount).
func Deserialize(data []byte, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := newByteReader(data)

	nodeCount, err := r.readU32()
	if err != nil {
		return nil, err
	}
	// Every node takes at least 6 bytes (final, id, edge count); reject a
	// count the buffer cannot hold before allocating the node array.
	if uint64(nodeCount)*6 > uint64(r.remaining()) {
		return nil, fmt.Errorf("%w: %d nodes cannot fit in %d remaining bytes", ErrDecode, nodeCount, r.remaining())
	}

	nodes := make([]indexedNode, nodeCount)

	for i := uint32(0); i < nodeCount; i++ {
		finalByte, err := r.readU8()
		if err != nil {
			return nil, err
		}

		id, err := r.readU32()
		if err != nil {
			return nil, err
		}
		if id != i {
			return nil, fmt.Errorf("%w: node id %d at position %d", ErrDecode, id, i)
		}

		edgeCount, err := r.readU8()
		if err != nil {
			return nil, err
		}

		edges := make(map[byte]int, edgeCount)
		for e := byte(0); e < edgeCount; e++ {
			letter, err := r.readU8()
			if err != nil {
				return nil, err
			}
			childIndex, err := r.readU32()
			if err != nil {
				return nil, err
			}
			if childIndex >= nodeCount {
				return nil, fmt.Errorf("%w: child index %d out of range [0,%d)", ErrDecode, childIndex, nodeCount)
			}
			edges[letter] = int(childIndex)
		}

		nodes[i] = indexedNode{final: finalByte != 0, edges: edges}
	}

	o.log.V(2).Info("decoded graph", "nodes", nodeCount, "bytesConsumed", len(data)-r.remaining())

	return &Graph{nodes: nodes, log: o.log}, nil
}
