package euclid_test

import (
	"fmt"

	"github.com/katalvlaran/gdwg/euclid"
)

func ExampleVector_Unit() {
	v := euclid.FromSlice([]float64{3, 4})
	u, err := v.Unit()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v, v.Norm(), u)
	// Output:
	// [3 4] 5 [0.6 0.8]
}
