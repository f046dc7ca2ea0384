// Package algorithms provides derived, read-only index structures over a
// graph store: a flattened neighborhood index for cache-friendly repeated
// traversal, a union-find connected components index, and incrementally
// updatable community structure indices for modularity optimization, plus a
// multi-level Louvain driver built on them.
//
// Every index is built from a point-in-time read pass over its source graph
// and never observes later mutations; staleness is the caller's
// responsibility. Building an index while the source graph is being mutated
// yields undefined contents; snapshot with Graph.Copy first when in doubt.
package algorithms
