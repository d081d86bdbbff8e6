// Package roundplan schedules software updates across a network of servers.
//
// Two servers that share a connection must not update in the same round;
// roundplan assigns every server a round so that this holds, using as few
// rounds as it can. In graph terms that is a proper vertex coloring, and
// the exact solver finds the chromatic number.
//
// Everything is organized under a handful of subpackages:
//
//	neighbors/ - ordered neighbor store with an amortized positional cursor
//	network/   - fixed-size server graph; each vertex carries its round
//	rounds/    - validator, exact backtracking solver, first-fit heuristic
//	bfs/       - breadth-first search and connected components
//	builder/   - deterministic topology generators (path, wheel, random…)
//	internal/  - instance I/O, YAML config, logging and the cobra CLI
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    4───3
//
// needs three rounds: {1}, {2,4}, {3}.
//
//	go install github.com/katalvlaran/roundplan/cmd/roundplan@latest
//	roundplan generate -k wheel -n 7 | roundplan solve --algo compare
package roundplan
