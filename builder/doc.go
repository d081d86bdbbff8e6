// Package builder generates deterministic network topologies for tests,
// benchmarks and the `roundplan generate` command.
//
// Every constructor contributes a block of fresh vertices to a Blueprint;
// BuildGraph lays the blocks out one after another (a disjoint union) and
// then materializes a network.Graph of exactly the total size. Edge(u, v)
// adds a link between already laid-out vertices, addressed by global index.
//
// Topologies:
//
//   - Isolated(n)             n vertices, no edges.
//   - Path(n)                 P_n, n ≥ 2.
//   - Cycle(n)                C_n, n ≥ 3.
//   - Star(n)                 center (first vertex) plus n-1 leaves, n ≥ 2.
//   - Wheel(n)                center plus a cycle of n-1 rim vertices, n ≥ 4.
//   - Complete(n)             K_n, n ≥ 1.
//   - CompleteBipartite(a,b)  K_{a,b}, a,b ≥ 1 (left block first).
//   - Grid(r,c)               4-neighborhood lattice, row-major, r,c ≥ 1.
//   - RandomSparse(n,p)       each unordered pair with probability p.
//   - RandomOutDegree(n,m)    every vertex links to m distinct random peers;
//     duplicate pairs collapse, so the result is simple.
//
// Guarantees:
//
//   - Determinism: same constructors, order and seed ⇒ identical graphs.
//   - Simple graphs only: no loops, no parallel edges.
//   - Never panics at build time; invalid parameters return sentinel errors.
//     Option constructors (WithRand) panic on nil, as programmer errors.
package builder
