/*
Package dawg implements a compact dictionary engine backed by a minimized
Directed Acyclic Word Graph (DAWG), as described by Steve Hanov's DAWG
construction algorithm (http://stevehanov.ca/blog/?id=115) and the
classic incremental-minimization technique of Daciuk et al.

A DAWG stores a finite set of lowercase words far more compactly than a
trie, because equivalent suffixes are shared: "cats" and "rats" both end
in the same subgraph for "ats". This package builds that graph
incrementally from a lexicographically sorted stream of words, flattens
it into an immutable, array-indexed representation, and supports three
operations on the result: exact membership lookup, constrained anagram
enumeration over a letter rack, and binary serialization.

To build a graph, create a Builder with New, Insert words in strictly
ascending byte order, and call Finalize to obtain a *Graph. The Builder
cannot be reused afterward and is not safe for concurrent inserts. The
resulting Graph is immutable and may be shared across goroutines without
synchronization.

Once built, a Graph can be written to disk with Save and reopened with
Load, which opens the file through a memory-mapped handle and copies
its contents into memory before decoding, or as a zstd-compressed frame
with SaveCompressed
and LoadCompressed.
*/
package dawg
