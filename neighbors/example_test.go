package neighbors_test

import (
	"fmt"

	"github.com/katalvlaran/roundplan/neighbors"
)

// ExampleStore shows negative positions and sequential access.
func ExampleStore() {
	s := neighbors.New[string]()
	s.Insert("web-1", -1)
	s.Insert("db-1", -1)
	s.Insert("cache-1", 0)

	for i := 0; i < s.Len(); i++ {
		v, _ := s.Get(i)
		fmt.Println(i, v)
	}

	last, _ := s.Get(-1)
	fmt.Println("last:", last)
	// Output:
	// 0 cache-1
	// 1 web-1
	// 2 db-1
	// last: db-1
}
