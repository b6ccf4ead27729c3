package main

import (
	"fmt"

	"example.com/EnumConstPrefix/enums"
)

func main() {
	fmt.Println(enums.North.Discriminant(), enums.East.Discriminant(), enums.South.Discriminant(), enums.West.Discriminant())
	fmt.Println(enums.VQuiet.Discriminant(), enums.VLoud.Discriminant())
}
