package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/bbtsp/unionfind"
)

func ExampleDisjointSet() {
	d := unionfind.New[int](4)
	d.MakeSet(1, 2, 3, 4)
	_, _ = d.Union(1, 2)
	_, _ = d.Union(3, 4)

	a, _ := d.Connected(1, 2)
	b, _ := d.Connected(2, 3)
	fmt.Println(a, b)

	// Output:
	// true false
}
