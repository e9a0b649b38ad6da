package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseg/builder"
	"github.com/katalvlaran/lvlseg/segment"
)

// ExampleBuild segments a cycle whose edges all have weight 2.
func ExampleBuild() {
	s, err := builder.Build(builder.Cycle(4), builder.WithConstantWeight(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := segment.Segment(s, segment.WithConstant(8))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Partition())
	// Output:
	// [[0 1 2 3]]
}
