package dawg

import (
	"fmt"

	"github.com/go-logr/logr"
)

// frame is one entry of the "unchecked" spine: the parent node, the
// letter labeling the edge, and the child at the far end. Frames are
// pushed as a word's suffix is appended and popped, deepest first, by
// minimizeDownTo.
type frame struct {
	parent *buildNode
	letter byte
	child  *buildNode
}

// Builder incrementally minimizes a Directed Acyclic Word Graph from a
// stream of words presented in strictly ascending byte order. It is the
// Hopcroft/Daciuk-style incremental construction: words must arrive
// sorted so the "unchecked" spine only ever grows or retracts by the
// common-prefix amount, letting subgraphs be canonicalized in
// depth-first post-order as they go out of scope.
//
// A Builder is single-writer only: it is not safe for concurrent Insert
// calls, and every operation is synchronous.
type Builder struct {
	root      *buildNode
	nextID    int
	previous  []byte
	unchecked []frame
	minimized map[string]*buildNode
	finalized bool
	numAdded  int
	log       logr.Logger
}

// New creates a Builder ready to accept words via Insert.
func New(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Builder{
		minimized: make(map[string]*buildNode),
		log:       o.log,
	}
	b.root = newBuildNode(0)
	b.nextID = 1
	return b
}

func (b *Builder) newNode() *buildNode {
	n := newBuildNode(b.nextID)
	b.nextID++
	return n
}

// CanAdd reports whether word could currently be passed to Insert without
// error: the Builder must not be finalized, and word (case-folded) must be
// strictly greater than the previously inserted word.
func (b *Builder) CanAdd(word string) bool {
	if b.finalized || word == "" {
		return false
	}
	lw := lowerASCII(word)
	return b.numAdded == 0 || string(lw) > string(b.previous)
}

// Insert adds word to the graph under construction. Words must be
// non-empty and strictly greater, in byte order after ASCII lowercasing,
// than the previously inserted word. Insert fails with ErrOrderViolation,
// ErrPostFinalizeMutation or (for an empty word) ErrInvalidArgument
// rather than mutating the graph on a precondition violation.
func (b *Builder) Insert(word string) error {
	if b.finalized {
		return fmt.Errorf("%w: %q", ErrPostFinalizeMutation, word)
	}
	if word == "" {
		return fmt.Errorf("%w: word must not be empty", ErrInvalidArgument)
	}

	lw := lowerASCII(word)
	if b.numAdded > 0 && string(lw) <= string(b.previous) {
		return fmt.Errorf("%w: %q does not follow %q", ErrOrderViolation, word, string(b.previous))
	}

	common := commonPrefixLen(lw, b.previous)
	b.minimizeDownTo(common)

	var node *buildNode
	if len(b.unchecked) == 0 {
		node = b.root
	} else {
		node = b.unchecked[len(b.unchecked)-1].child
	}

	for _, letter := range lw[common:] {
		child := b.newNode()
		node.setEdge(letter, child)
		b.unchecked = append(b.unchecked, frame{node, letter, child})
		node = child
	}

	node.setFinal(true)
	b.previous = lw
	b.numAdded++

	b.log.V(2).Info("inserted word", "word", word, "nodesAllocated", b.nextID)

	return nil
}

// minimizeDownTo pops frames from the unchecked spine down to length k,
// deepest first, replacing each child with its canonical representative
// when an equivalent subgraph has already been seen. The pop order is
// essential: by the time a parent's signature is computed, all of its
// descendants have already been replaced by canonical nodes.
func (b *Builder) minimizeDownTo(k int) {
	for len(b.unchecked) > k {
		top := b.unchecked[len(b.unchecked)-1]
		b.unchecked = b.unchecked[:len(b.unchecked)-1]

		sig := top.child.signature()
		if canonical, ok := b.minimized[sig]; ok {
			top.parent.setEdge(top.letter, canonical)
		} else {
			b.minimized[sig] = top.child
		}
	}
}

// Finalize minimizes the remaining spine, marks the Builder as finalized,
// and flattens the minimized root into an immutable Graph. Subsequent
// Insert calls fail. Finalize is idempotent: calling it a second time
// just re-flattens the already-minimized root.
func (b *Builder) Finalize() (*Graph, error) {
	if !b.finalized {
		b.minimizeDownTo(0)
		b.finalized = true
	}
	return flatten(b.root, b.numAdded, b.log)
}

func lowerASCII(s string) []byte {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
