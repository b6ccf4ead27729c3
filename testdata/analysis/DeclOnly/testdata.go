//go:build taggen

package testdata

import "github.com/sublee/taggen"

type helper struct{} // want `cannot declare helper in taggen file; invisible without the taggen tag`

const answer = 42 // want `cannot declare answer in taggen file; invisible without the taggen tag`

func fn() {} // want `cannot declare fn in taggen file; invisible without the taggen tag`

var x = 1 // want `cannot declare x in taggen file; invisible without the taggen tag`

var _ = taggen.Enum(nil, "Light",
	taggen.Repr[uint8](),
	taggen.Unit("Red"),
)
