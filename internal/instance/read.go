package instance

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/roundplan/network"
)

// Stdin is the path Load reads from standard input.
const Stdin = "-"

// Parse reads one instance from r and builds its graph.
// Ids outside [1,n] fail with network.ErrInvalidReference.
func Parse(r io.Reader) (*network.Graph, error) {
	return parse("", r)
}

// Load opens path (or stdin for "-") and parses it.
func Load(path string) (*network.Graph, error) {
	if path == Stdin || path == "" {
		return parse("stdin", os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open instance")
	}
	defer f.Close()

	return parse(path, f)
}

func parse(name string, r io.Reader) (*network.Graph, error) {
	ast, err := parseInstance.Parse(name, r)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}

	n, m := int(ast.Servers), int(ast.Connections)
	if n < 0 || m < 0 {
		return nil, errors.Wrapf(ErrMalformed, "header %d %d: counts cannot be negative", n, m)
	}
	if len(ast.Edges) != m {
		return nil, errors.Wrapf(ErrMalformed, "header declares %d connections, found %d", m, len(ast.Edges))
	}

	g, err := network.New(n)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	for _, e := range ast.Edges {
		if err = g.AddEdgeByID(int(e.U), int(e.V)); err != nil {
			return nil, errors.Wrapf(err, "%s line %d", name, e.Pos.Line)
		}
	}

	return g, nil
}

// ParseAllocation reads an allocation file for n servers and returns the
// round of server id i+1 at index i. Every id in [1,n] must appear exactly
// once and no round may be negative.
func ParseAllocation(r io.Reader, n int) ([]int, error) {
	ast, err := parseAllocation.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	if len(ast.Entries) != n {
		return nil, errors.Wrapf(ErrMalformed, "%d entries for %d servers", len(ast.Entries), n)
	}

	out := make([]int, n)
	seen := make([]bool, n)
	for _, a := range ast.Entries {
		id, round := int(a.ID), int(a.Round)
		if id < 1 || id > n {
			return nil, errors.Wrapf(network.ErrInvalidReference, "line %d: server %d", a.Pos.Line, id)
		}
		if seen[id-1] {
			return nil, errors.Wrapf(ErrMalformed, "line %d: server %d listed twice", a.Pos.Line, id)
		}
		if round < 0 {
			return nil, errors.Wrapf(network.ErrInvalidRound, "line %d: server %d has round %d", a.Pos.Line, id, round)
		}
		seen[id-1] = true
		out[id-1] = round
	}

	return out, nil
}

// ParseRounds reads the single integer of a rounds file.
func ParseRounds(r io.Reader) (int, error) {
	ast, err := parseRounds.Parse("", r)
	if err != nil {
		return 0, errors.Wrap(ErrMalformed, err.Error())
	}
	if ast.Rounds < 0 {
		return 0, errors.Wrapf(ErrMalformed, "rounds %d", ast.Rounds)
	}

	return int(ast.Rounds), nil
}
