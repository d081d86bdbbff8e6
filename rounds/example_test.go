package rounds_test

import (
	"fmt"

	"github.com/katalvlaran/roundplan/network"
	"github.com/katalvlaran/roundplan/rounds"
)

// ExampleMinimum schedules a four-server chain with an extra link 1-3.
func ExampleMinimum() {
	g, _ := network.New(4)
	_ = g.AddEdgeByID(1, 2)
	_ = g.AddEdgeByID(2, 3)
	_ = g.AddEdgeByID(3, 4)
	_ = g.AddEdgeByID(1, 3)

	res, err := rounds.Minimum(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Rounds)
	for _, v := range g.Vertices() {
		fmt.Println(v.ID(), v.Round())
	}
	// Output:
	// 3
	// 1 1
	// 2 2
	// 3 3
	// 4 1
}

// ExampleCompare shows the greedy and exact round counts side by side.
func ExampleCompare() {
	g, _ := network.New(5)
	for i := 1; i <= 5; i++ {
		_ = g.AddEdgeByID(i, i%5+1)
	}

	c, _ := rounds.Compare(g)
	fmt.Printf("greedy=%d exact=%d gap=%d valid=%v\n", c.Greedy.Rounds, c.Exact.Rounds, c.Gap, rounds.IsValid(g))
	// Output:
	// greedy=3 exact=3 gap=0 valid=true
}
