package axis_test

import (
	"fmt"

	"github.com/cwbudde/algo-axis/axis"
	"github.com/cwbudde/algo-axis/axis/effects"
)

func Example() {
	a, err := axis.New(0, 128, false)
	if err != nil {
		fmt.Println("error")
		return
	}

	lerp, err := effects.NewLerp(0.5)
	if err != nil {
		fmt.Println("error")
		return
	}

	chain := []axis.Inline{axis.Wrap(lerp)}

	for _, raw := range []uint16{0, 100, 100, 100, 100} {
		a.Update(raw, chain)
		fmt.Println(a.Output(0, 128))
	}

	// Output:
	// 0
	// 50
	// 75
	// 87
	// 93
}

func ExampleAxis_Output() {
	throttle, err := axis.New(200, 824, true)
	if err != nil {
		fmt.Println("error")
		return
	}

	throttle.Update(824, nil)
	fmt.Println(throttle.Output(0, 255))

	throttle.Update(200, nil)
	fmt.Println(throttle.Output(0, 255))

	// Output:
	// 0
	// 255
}
