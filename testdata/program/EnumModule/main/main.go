package main

import (
	"fmt"

	"example.com/EnumModule/enums"
)

func main() {
	fmt.Println(enums.SuitClubs, enums.SuitSpades, enums.SuitSpades.Number())
	fmt.Println(enums.RankAce.Number(), enums.RankJack.Number(), enums.RankQueen.Number(), enums.RankKing.Number())
	fmt.Println(enums.RankQueen, enums.RankKing)
}
