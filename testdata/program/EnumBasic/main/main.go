package main

import (
	"fmt"

	"example.com/EnumBasic/enums"
)

func main() {
	fmt.Println(enums.LightRed.Number(), enums.LightAmber.Number(), enums.LightGreen.Number())
	fmt.Println(enums.LightRed.Discriminant(), enums.LightAmber.Discriminant(), enums.LightGreen.Discriminant())

	for _, n := range []uint8{0, 2, 3} {
		light, err := enums.LightFromNumber(n)
		fmt.Println(light, err)
	}

	if _, err := enums.LightFromNumber(1); err != nil {
		fmt.Println(err)
	}
}
