package main

import (
	"fmt"

	"example.com/EnumZeroVariants/enums"
)

func main() {
	for _, n := range []uint16{0, 65535} {
		_, err := enums.VoidFromNumber(n)
		fmt.Println(err)
	}
}
