// Package polysplit splits a polyline into consecutive sub-polylines
// anchored at a second, independent sequence of reference points.
//
// Given a polyline P = ⟨p0, p1, ..., pn⟩ and reference points
// Q = ⟨q0, q1, ..., qm-1⟩ that need not lie on P, Split partitions P into
// m-1 sub-polylines such that the k-th sub-polyline starts near qk and
// ends near qk+1: the anchors are the closest projections of qk/qk+1 onto
// P, chosen so the total projection distance is minimised over every
// admissible, monotone-advancing partition.
//
// # Algorithm
//
// Split runs four stages, leaves first:
//
//   - catalog: enumerates candidate anchor locations ("cut points") along
//     every segment of P, deduplicating the redundant Begin/End cases that
//     would otherwise create zero-cost self-loops in the search graph.
//   - layered graph: for each reference point, finds every catalog entry
//     reachable within the optional distance threshold and records it as
//     one layer of an implicit DAG (no edges are materialized; the search
//     treats each vertex as linked to every vertex of the next layer).
//   - shortest path: a monotone-constrained Dijkstra over the layered
//     DAG — edges may only advance to an equal-or-larger cut-point index,
//     which is what prevents the chosen anchors from doubling back along P.
//   - assembler: splices the chosen anchors with the intervening polyline
//     vertices into the output sub-polylines.
//
// # Polymorphism
//
// Split is generic over any point type P, given a metric value
// implementing geom.Metric[P]; package geom provides a Euclidean ℝ² implementation (geom.Euclidean) as the
// default collaborator. Distance is fixed to float64 — every metric this
// package has been asked to support (Euclidean, geodesic, taxicab)
// produces one, so a second type parameter buys no genericity here.
//
// # Determinism and concurrency
//
// Split is a pure function: no shared state, no I/O, no background work.
// Concurrent calls with disjoint arguments are trivially safe. Priority
// queue ties are broken by ascending vertex index so results do not
// depend on heap internals or platform.
package polysplit
