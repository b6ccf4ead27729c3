package main

import (
	"fmt"

	"example.com/EnumWraparound/enums"
)

func main() {
	fmt.Println(enums.ChimeMax.Discriminant(), enums.ChimeWrapped.Discriminant())
	fmt.Println(enums.TempTop.Discriminant(), enums.TempBottom.Discriminant())
	fmt.Println(
		enums.CountMinus.Discriminant(),
		enums.CountAlmostZero.Discriminant(),
		enums.CountZero.Discriminant(),
		enums.CountOne.Discriminant(),
	)
}
