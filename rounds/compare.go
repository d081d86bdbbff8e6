package rounds

import "github.com/katalvlaran/roundplan/network"

// Compare runs Greedy and then Minimum on g with the same options and
// reports both. The exact allocation is left on g.
func Compare(g *network.Graph, opts ...Option) (Comparison, error) {
	greedy, err := Greedy(g, opts...)
	if err != nil {
		return Comparison{}, err
	}
	exact, err := Minimum(g, opts...)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{Greedy: greedy, Exact: exact, Gap: greedy.Rounds - exact.Rounds}, nil
}
