// This example declares a unit enum and a data-carrying enum in taggen.go
// and uses the generated code in taggen_gen.go. Regenerate with:
//
//	go run github.com/sublee/taggen/cmd/taggen .
package main

import "fmt"

func main() {
	fmt.Println(LightAmber, "=", LightAmber.Number())

	light, err := LightFromNumber(3)
	fmt.Println(light, err)

	if _, err := LightFromNumber(1); err != nil {
		fmt.Println(err)
	}

	shapes := []Shape{
		ShapeEmpty{},
		ShapeDot{F0: 1, F1: 2},
		ShapeCircle{X: 0, Y: 0, Radius: 10},
	}
	for _, s := range shapes {
		fmt.Println(s.Discriminant())
	}
}
