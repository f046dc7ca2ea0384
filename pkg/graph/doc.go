// Package graph implements an in-memory graph store supporting directed,
// undirected, and mixed multigraphs with attributed nodes and edges.
//
// A Graph is configured at construction time (type, multi-edges, self-loops)
// and those settings never change afterwards. Nodes and edges are identified
// by canonical string keys; any value passed as a key is coerced once at the
// API boundary via Key.
//
// The store is the single source of truth. The index structures in
// pkg/algorithms are point-in-time projections built from a non-mutating
// read pass; they do not observe later mutations.
//
// Concurrency: Graph has no internal locking. All operations are synchronous
// and finite. Concurrent mutation from multiple goroutines is out of
// contract and must be serialized by the caller; Copy is the supported way
// to hand a stable snapshot to readers or index builders. Event handlers run
// synchronously in the mutating call stack after the mutation has committed,
// and must not mutate the graph reentrantly.
//
// Iteration order over nodes and edges is unspecified. Two independent
// enumerations may differ; callers must not rely on any ordering beyond what
// an operation explicitly documents.
package graph
