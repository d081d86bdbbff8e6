package instance

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Whitespace, newlines included, is insignificant: an instance is a flat
// stream of integers, exactly as the batch tool scanned it.
var instanceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "whitespace", Pattern: `\s+`},
})

// number captures an Int token in base 10.
type number int

func (n *number) Capture(values []string) error {
	v, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	*n = number(v)
	return nil
}

// instanceAST is "n m" followed by m connections.
type instanceAST struct {
	Servers     number           `parser:"@Int"`
	Connections number           `parser:"@Int"`
	Edges       []*connectionAST `parser:"@@*"`
}

type connectionAST struct {
	Pos lexer.Position

	U number `parser:"@Int"`
	V number `parser:"@Int"`
}

// allocationAST is one "<id> <round>" pair per server.
type allocationAST struct {
	Entries []*assignmentAST `parser:"@@*"`
}

type assignmentAST struct {
	Pos lexer.Position

	ID    number `parser:"@Int"`
	Round number `parser:"@Int"`
}

// roundsAST is the single integer of a rounds file.
type roundsAST struct {
	Rounds number `parser:"@Int"`
}

var (
	parseInstance = participle.MustBuild[instanceAST](
		participle.Lexer(instanceLexer),
		participle.Elide("Comment", "whitespace"),
	)
	parseAllocation = participle.MustBuild[allocationAST](
		participle.Lexer(instanceLexer),
		participle.Elide("Comment", "whitespace"),
	)
	parseRounds = participle.MustBuild[roundsAST](
		participle.Lexer(instanceLexer),
		participle.Elide("Comment", "whitespace"),
	)
)
