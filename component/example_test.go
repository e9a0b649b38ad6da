package component_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseg/component"
)

// ExampleTable_Merge merges three singletons and prints the resulting chain.
func ExampleTable_Merge() {
	tbl := component.NewTable(3, 10)
	tbl.Merge(tbl.Find(0), tbl.Find(1), 2)
	tbl.Merge(tbl.Find(1), tbl.Find(2), 3)

	id := tbl.Find(2)
	fmt.Println(tbl.Vertices(id), tbl.Confidence(id))
	// Output: [0 1 2] 6
}
