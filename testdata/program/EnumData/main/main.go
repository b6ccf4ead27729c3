package main

import (
	"fmt"

	"example.com/EnumData/enums"
)

func main() {
	shapes := []enums.Shape{
		enums.ShapeEmpty{},
		enums.ShapeDot{F0: 1, F1: 2},
		enums.ShapeCircle{X: 3, Y: 4, Radius: 5},
	}

	for _, s := range shapes {
		fmt.Println(s, s.Discriminant())
	}

	switch s := shapes[2].(type) {
	case enums.ShapeCircle:
		fmt.Println("circle with radius", s.Radius)
	}

	fmt.Println(enums.ShapeEmptyDiscriminant, enums.ShapeDotDiscriminant, enums.ShapeCircleDiscriminant)
}
